package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/segmentio/avltree/compare"
	"github.com/segmentio/avltree/container/avl"
	"github.com/segmentio/avltree/container/bst"
	"github.com/segmentio/avltree/internal/config"
)

// ErrInvalidValue is returned when a value passed to render is not an integer.
var ErrInvalidValue = errors.New("invalid value")

const formFlag = "form"

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <values...>",
		Short: "Print the structure of a tree built from a list of values",
		Long: `render inserts the integer values in the order given and prints the
resulting tree. Values prefixed with '~' are removed instead of inserted.
Separate negative values from the flags with '--'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringP(formFlag, "f", config.FormBalance, "tree form: balance, height, bst")

	return cmd
}

type renderer interface {
	Insert(int)
	String() string
}

func runRender(cmd *cobra.Command, args []string) error {
	form, _ := cmd.Flags().GetString(formFlag)

	var (
		t      renderer
		remove func(int) bool
	)

	switch form {
	case config.FormBalance:
		tr := avl.New[int](compare.Function[int])
		t, remove = tr, tr.Remove
	case config.FormHeight:
		tr := avl.NewHeightTree[int](compare.Function[int])
		t, remove = tr, tr.Remove
	case config.FormBST:
		tr := bst.New[int](compare.Function[int])
		t, remove = tr, tr.Delete
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownForm, form)
	}

	for _, arg := range args {
		s, del := arg, false
		if len(s) > 0 && s[0] == '~' {
			s, del = s[1:], true
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidValue, arg)
		}

		if del {
			remove(v)
		} else {
			t.Insert(v)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())

	return nil
}
