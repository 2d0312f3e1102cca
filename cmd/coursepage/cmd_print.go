package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"coursepage/internal/content"
	"coursepage/internal/ui"
	"coursepage/internal/ui/state"
	"coursepage/internal/ui/views"
)

var (
	printStdout bool
	printPlain  bool
	printWidth  int
)

// printCmd renders the page once, in its initial state
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the page once, through a pager on a terminal",
	Long: `Render the landing page in its initial state: the first testimonial and every
panel closed. On a terminal the output opens in a pager; otherwise, or with
--stdout, it is written straight out. --plain drops styling and lists every
testimonial and panel.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&printStdout, "stdout", false, "Write to stdout instead of the pager")
	printCmd.Flags().BoolVar(&printPlain, "plain", false, "Plain text without styling")
	printCmd.Flags().IntVar(&printWidth, "width", 0, "Render width (default: terminal width or 100)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	var text string
	if printPlain {
		text = content.Text(a.page)
	} else {
		text, err = renderStyled(a, renderWidth(out))
		if err != nil {
			return err
		}
	}

	if tty && !printStdout {
		return ui.RunPager(text)
	}
	_, err = io.WriteString(out, text)
	return err
}

// renderStyled draws the page the way the viewer first shows it, without the frame
func renderStyled(a *app, width int) (string, error) {
	st, err := state.NewAppState(a.page)
	if err != nil {
		return "", err
	}
	body, _ := views.NewRenderer(a.md).RenderPage(views.ViewState{
		Width:       width,
		Narrow:      width < a.cfg.UI.NarrowWidth,
		Page:        st.Page,
		Carousels:   st.Carousels,
		Accordions:  st.Accordions,
		PanelCursor: st.PanelCursor,
		Autoplay:    a.cfg.Autoplay.Enabled,
	})
	return body + "\n", nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func renderWidth(w io.Writer) int {
	if printWidth > 0 {
		return printWidth
	}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 100
}

