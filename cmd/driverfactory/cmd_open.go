package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/tebeka/selenium"

	"github.com/wanmail/driverfactory"
)

func newCmdOpen() *cobra.Command {
	return &cobra.Command{
		Use:   "open URL",
		Short: "Open URL and print the page title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPage(cmd, args[0], func(f *driverfactory.Factory, wd selenium.WebDriver) error {
				title, err := wd.Title()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), title)
				return nil
			})
		},
	}
}

// withPage starts the registered driver, navigates to url and calls fn. Every
// driver is quit afterwards.
func withPage(cmd *cobra.Command, url string, fn func(*driverfactory.Factory, selenium.WebDriver) error) (err error) {
	f, err := newFactory(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			glog.Warningf("Error closing drivers: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	wd, err := f.GetDriver()
	if err != nil {
		return err
	}
	if err := wd.Get(url); err != nil {
		return fmt.Errorf("opening %s: %v", url, err)
	}
	return fn(f, wd)
}
