package commands

import "github.com/spf13/cobra"

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Storefront catalog and cart service",
		SilenceUsage: true,
	}
	serve := newServeCommand()
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newProductsCommand())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
