package commands

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/app"
	"storefront/config"
	"storefront/models"
	"storefront/services"
)

type productsOptions struct {
	rawQuery string
	category string
	price    string
	search   string
}

func newProductsCommand() *cobra.Command {
	var opts productsOptions

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products matching the given filters",
		Example: `  storefront products --category Electronics --price 100-500
  storefront products --query "search=shoe"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := opts.values(cmd)
			if err != nil {
				return err
			}
			cfg := config.LoadConfig()
			return listProducts(cmd.Context(), cfg, query, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.rawQuery, "query", "", "raw query string, e.g. category=Clothing&price=0-100")
	cmd.Flags().StringVar(&opts.category, services.QueryCategory, "", "exact category")
	cmd.Flags().StringVar(&opts.price, services.QueryPrice, "", "inclusive price range as min-max")
	cmd.Flags().StringVar(&opts.search, services.QuerySearch, "", "case-insensitive title search")
	return cmd
}

// values merges --query with the individual flags; explicit flags win.
func (o productsOptions) values(cmd *cobra.Command) (url.Values, error) {
	query, err := url.ParseQuery(o.rawQuery)
	if err != nil {
		return nil, errors.Wrap(err, "parse --query")
	}
	flags := map[string]string{
		services.QueryCategory: o.category,
		services.QueryPrice:    o.price,
		services.QuerySearch:   o.search,
	}
	for name, value := range flags {
		if cmd.Flags().Changed(name) {
			query.Set(name, value)
		}
	}
	return query, nil
}

func listProducts(ctx context.Context, cfg *config.Config, query url.Values, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	catalog, err := app.LoadCatalog(ctx, cfg, zap.NewNop())
	if err != nil {
		return err
	}

	filters := services.ParseFilterQuery(query).Apply(models.DefaultFilterState())
	products, err := services.NewProductService(catalog, nil, nil).ListProducts(ctx, filters)
	if err != nil {
		return err
	}
	return printProducts(out, products, filters)
}

func printProducts(out io.Writer, products []models.Product, filters models.FilterState) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, p.Price.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d product(s)  location: %s\n", len(products), services.FilterLocation("/", filters))
	return err
}
