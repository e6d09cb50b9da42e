package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/shuv1824/islandmap/internal/island"
	"github.com/shuv1824/islandmap/internal/services/search"
	"github.com/shuv1824/islandmap/internal/services/travel"
	"github.com/shuv1824/islandmap/internal/types"
)

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the region groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("REGION", "PROVINCES")
			for _, r := range search.Regions() {
				tbl.AddRow(r.Name, strings.Join(r.Provinces, ", "))
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
}

func islandsCmd() *cobra.Command {
	var (
		region, district string
		usable           bool
		page             int
	)

	cmd := &cobra.Command{
		Use:   "islands",
		Short: "List islands by region group",
		Example: `
islandmap islands --region 충청도
islandmap islands --region 전라남도 --district 신안군 --usable --page 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViewer(cmd.Context())
			view, err := v.RegionList(region, district, usable, page)
			if err != nil {
				return err
			}
			fmt.Fprintln(color.Output, color.New(color.Bold).Sprint(view.Title))
			printPage(view.Page, view.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "region group, e.g. 경기도 or 충청도")
	cmd.Flags().StringVar(&district, "district", "", "sigungu within the region")
	cmd.Flags().BoolVar(&usable, "usable", false, "only islands open for use")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func districtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "districts <region>",
		Short: "List the districts of a region group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViewer(cmd.Context())
			districts, err := v.Districts(args[0])
			if err != nil {
				return err
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("DISTRICT", "PROVINCE")
			for _, d := range districts {
				tbl.AddRow(d.Full, d.Province)
			}
			fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
}

func territorialCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "territorial",
		Short: "List territorial baseline islands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViewer(cmd.Context())
			fmt.Fprintln(color.Output, color.New(color.Bold).Sprint(island.BaselineBadge))
			printPage(v.TerritorialList(page), "")
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one island",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := loadViewer(cmd.Context())
			view, err := v.Island(args[0])
			if err != nil {
				return err
			}
			printDetail(view.Detail)
			printPorts(view.NearestPorts)
			return nil
		},
	}
}

func printPage(p types.Page, empty string) {
	if p.Total == 0 {
		if empty != "" {
			fmt.Fprintln(color.Output, color.YellowString(empty))
		}
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("ID", "NAME", "ADDRESS")
	for _, s := range p.Items {
		tbl.AddRow(s.ID, s.Name, s.Address)
	}
	fmt.Fprintln(color.Output, tbl)

	if p.ShowPagination {
		fmt.Fprintln(color.Output, color.HiBlackString("page %d/%d (%d islands)", p.Page, p.TotalPages, p.Total))
	}
}

func printDetail(d island.Detail) {
	title := color.New(color.Bold).Sprint(d.Name)
	if d.Usable {
		title += " " + color.GreenString("[%s]", island.UsableBadge)
	}
	fmt.Fprintln(color.Output, title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	if d.TravelInfo != "" {
		tbl.AddRow(color.CyanString("가는 방법"), d.TravelInfo)
	}
	for _, group := range [][]island.Row{d.Rows, d.Ownership, d.Extra} {
		for _, r := range group {
			value := r.Value
			if r.Highlight {
				value = color.RedString(value)
			}
			tbl.AddRow(color.CyanString(r.Label), value)
		}
	}
	fmt.Fprintln(color.Output, tbl)
}

func printPorts(ports []travel.PortDistance) {
	if len(ports) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "PORT", "DISTANCE", "ADDRESS")
	for _, p := range ports {
		tbl.AddRow(p.Rank, p.Port.Name, fmt.Sprintf("%.1f km", p.DistanceKm), p.Port.Address)
	}
	fmt.Fprintln(color.Output, tbl)
}
