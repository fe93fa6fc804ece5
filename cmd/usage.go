package cmd

import (
	"AdminDeck/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Print(GetUsage())
}

// GetUsage returns usage information as a string.
func GetUsage() string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	printStr(fmt.Sprintf("Usage: %s [<Flags>]", version.CommandName))
	printStr("")
	printStr(fmt.Sprintf("%s [%s]", version.ApplicationName, version.Version))
	printStr("Operator console. Run without flags to open the console; press a for the")
	printStr("about panel and p for panic mode.")
	printStr("")
	printStr("Flags:")
	printStr("")

	var f Flags
	sb.WriteString(NewFlagSet(&f).FlagUsages())
	return sb.String()
}

func printVersion() {
	fmt.Printf("%s [%s]\n", version.ApplicationName, version.Version)
	fmt.Printf("UI version: %s\n", version.UI())
	fmt.Printf("Commit: %s\n", version.Commit)
	fmt.Printf("Built: %s\n", version.BuildDate)
}
