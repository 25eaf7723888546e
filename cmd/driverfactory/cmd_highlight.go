package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/selenium"

	"github.com/wanmail/driverfactory"
)

func newCmdHighlight() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight URL SELECTOR",
		Short: "Open URL and highlight the first usable element matching a CSS selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := args[1]
			return withPage(cmd, args[0], func(f *driverfactory.Factory, wd selenium.WebDriver) error {
				found, err := wd.FindElements(selenium.ByCSSSelector, selector)
				if err != nil {
					return err
				}
				usable, err := f.Matching(found)
				if err != nil {
					return err
				}
				if len(usable) == 0 {
					return fmt.Errorf("no usable element matches %q (%d found)", selector, len(found))
				}
				if err := f.Highlight(driverfactory.NewStyleElement(wd, usable[0])); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "highlighted 1 of %d elements matching %q\n", len(found), selector)
				return nil
			})
		},
	}
}
