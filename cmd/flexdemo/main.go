package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	flex "github.com/kflex/flexbox"
)

// demo building a three-row dashboard tree and printing its resolved layout

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "flexdemo",
		Level: hclog.Warn,
	})

	root := flex.New()
	root.SetFlexDirection(flex.FlexDirectionColumn)
	root.SetDimension(flex.DimensionWidth, 80)
	root.SetDimension(flex.DimensionHeight, 24)
	root.SetPadding(flex.EdgeAll, 1)

	header := flex.New()
	header.SetDimension(flex.DimensionHeight, 3)
	header.SetMargin(flex.EdgeBottom, 1)
	mustAdd(root, header)

	body := flex.New()
	body.SetFlexDirection(flex.FlexDirectionRow)
	body.SetFlex(1)
	mustAdd(root, body)

	sidebar := flex.New()
	sidebar.SetDimension(flex.DimensionWidth, 20)
	mustAdd(body, sidebar)

	main_ := flex.New()
	main_.SetFlex(1)
	main_.SetMargin(flex.EdgeLeft, 2)
	mustAdd(body, main_)

	footer := flex.New()
	footer.SetDimension(flex.DimensionHeight, 1)
	mustAdd(root, footer)

	if err := flex.CalculateLayout(root, 80, flex.WithLogger(logger)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	fmt.Println(box.Render(flex.String(root)))
}

func mustAdd(parent, child *flex.Node) {
	if err := parent.AddChild(child); err != nil {
		panic(err)
	}
}
