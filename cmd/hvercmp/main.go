// hvercmp compares two version strings and prints which one takes precedence.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/verhub/verhub-core/providers/hversion"
)

func main() {
	cmd := &cli.Command{
		Name:      "hvercmp",
		Usage:     "compare two version strings",
		ArgsUsage: "<version> <version>",
		Action:    run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return cli.Exit("there must be two arguments", 64)
	}
	a, b := cmd.Args().Get(0), cmd.Args().Get(1)

	fmt.Println(verdict(a, b))
	return nil
}

// verdict renders the comparison outcome of two raw version strings.
func verdict(a, b string) string {
	switch hversion.Parse(a).Compare(hversion.Parse(b)) {
	case hversion.Less:
		return fmt.Sprintf("%s is less than %s", a, b)
	case hversion.Greater:
		return fmt.Sprintf("%s is greater than %s", a, b)
	default:
		return fmt.Sprintf("%s is equal to %s", a, b)
	}
}
