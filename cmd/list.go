package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/zhubert/murmur/internal/chat"
	"github.com/zhubert/murmur/internal/seed"
	"github.com/zhubert/murmur/internal/status"
)

// previewWidth caps message and status previews in table cells
const previewWidth = 40

var listCmd = &cobra.Command{
	Use:       "list [chats|statuses]",
	Short:     "Print the bundled chats or statuses as a table",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"chats", "statuses"},
	RunE: func(cmd *cobra.Command, args []string) error {
		what := "chats"
		if len(args) == 1 {
			what = args[0]
		}
		data := seed.Default()
		switch what {
		case "statuses":
			renderStatuses(cmd.OutOrStdout(), data.Statuses)
		default:
			renderChats(cmd.OutOrStdout(), data.Chats)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderChats(w io.Writer, chats []chat.Chat) {
	table := newTable(w, []string{"ID", "Name", "Kind", "Unread", "Last message"})
	for _, c := range chats {
		last := ""
		if m, ok := c.Last(); ok {
			last = ansi.Truncate(m.Text, previewWidth, "…")
		}
		table.Append([]string{c.ID, c.Name, string(c.Kind), strconv.Itoa(c.Unread), last})
	}
	table.Render()
	fmt.Fprintf(w, "\n%d chats\n", len(chats))
}

func renderStatuses(w io.Writer, statuses []status.Status) {
	table := newTable(w, []string{"ID", "Author", "Posted", "Background", "Content"})
	for _, s := range statuses {
		table.Append([]string{
			s.ID,
			s.AuthorName,
			s.CreatedAtLabel,
			s.BackgroundColor,
			ansi.Truncate(s.Content, previewWidth, "…"),
		})
	}
	table.Render()
	fmt.Fprintf(w, "\n%d statuses\n", len(statuses))
}
