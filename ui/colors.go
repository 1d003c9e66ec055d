package ui

import (
	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgHiRed).SprintfFunc()
	yellow = color.New(color.FgHiYellow).SprintfFunc()
	green  = color.New(color.FgHiGreen).SprintfFunc()
	cyan   = color.New(color.FgHiCyan).SprintfFunc()
)
