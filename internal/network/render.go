// Tastenet - Similarity Network Recommendation Simulator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tastenet

package network

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Grid returns the (N+1)×(N+1) cells of the network: ratings label the
// first row and column, raw similarity values fill the body.
func (n *RatedNetwork) Grid() [][]string {
	size := n.Size()
	grid := make([][]string, size+1)

	header := make([]string, size+1)
	header[0] = ""
	for j, r := range n.ratings {
		header[j+1] = r.String()
	}
	grid[0] = header

	for i, row := range n.similarity {
		line := make([]string, size+1)
		line[0] = n.ratings[i].String()
		for j, v := range row {
			line[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		grid[i+1] = line
	}
	return grid
}

// Render draws Grid as a bordered table.
func (n *RatedNetwork) Render() string {
	grid := n.Grid()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(grid[0]...).
		Rows(grid[1:]...)
	return t.Render()
}

// String implements fmt.Stringer.
func (n *RatedNetwork) String() string {
	return n.Render()
}
