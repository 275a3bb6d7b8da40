package main

import (
	"fmt"
	"strconv"
	"strings"

	"artgie-web/internal/product"
	"artgie-web/internal/theme"
	"artgie-web/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type listOptions struct {
	categories []string
	inStock    bool
	sort       string
	theme      string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with the same filters and sorts as the products page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.categories, "category", "c", nil, "Only show these categories (repeatable)")
	cmd.Flags().BoolVar(&opts.inStock, "in-stock", false, "Only show products in stock")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", string(product.SortDefault), "Sort mode: "+sortModeList())
	cmd.Flags().StringVar(&opts.theme, "theme", string(theme.Light), "Color theme: light or dark")

	return cmd
}

func sortModeList() string {
	modes := make([]string, 0, len(product.SortModes()))
	for _, m := range product.SortModes() {
		modes = append(modes, m.String())
	}
	return strings.Join(modes, ", ")
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	mode, err := product.ParseSortMode(opts.sort)
	if err != nil {
		return fmt.Errorf("%w (use one of: %s)", err, sortModeList())
	}

	repo, err := openRepository(rootFlags)
	if err != nil {
		return err
	}

	var filter product.Filter
	for _, c := range opts.categories {
		if !filter.HasCategory(c) {
			filter = filter.ToggleCategory(c)
		}
	}
	filter = filter.SetInStockOnly(opts.inStock)

	result, err := product.NewService(repo).List(cmd.Context(), product.ListOptions{Filter: filter, Sort: mode})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderProductTable(result, theme.PaletteFor(theme.Parse(opts.theme))))
	return nil
}

var columnWidths = []int{4, 26, 16, 8, 6}

func renderProductTable(result *product.ListResult, p theme.Palette) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	cell := lipgloss.NewStyle().Foreground(p.Foreground)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	inStock := lipgloss.NewStyle().Foreground(p.Success)
	outOfStock := lipgloss.NewStyle().Foreground(p.Danger)

	row := func(styles []lipgloss.Style, cols ...string) string {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = styles[i].Width(columnWidths[i]).MaxWidth(columnWidths[i]).Render(c)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	var b strings.Builder
	b.WriteString(row([]lipgloss.Style{header, header, header, header, header}, "ID", "NAME", "CATEGORY", "PRICE", "STOCK"))
	b.WriteString("\n")

	for _, item := range result.Items {
		stockStyle, stock := inStock, "yes"
		if !item.InStock {
			stockStyle, stock = outOfStock, "out"
		}
		styles := []lipgloss.Style{cell, cell, cell, cell, stockStyle}
		b.WriteString(row(styles, strconv.Itoa(item.ID), item.Name, item.Category, view.FormatPrice(item.Price), stock))
		b.WriteString("\n")
	}

	if result.TotalCount == 0 {
		b.WriteString(muted.Render("No products found"))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(view.CountLabel(result.TotalCount)))
	b.WriteString("\n")
	return b.String()
}
