package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"session-signup/domain/signup"
	"session-signup/repositories"
)

// Viewer dumps every sign-up sheet in the store as a table. Handy to check
// the state of a session without going through the HTTP API.
func main() {
	dbPath := flag.String("db", "", "Path to the badger store")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db flag")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repositories.NewSheetRepository(db, logger, 1)

	sheets, err := repo.List(context.Background())
	if err != nil {
		log.Fatal("Error while listing sheets: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Session", "Status", "Capacity", "Signed Up", "Attendees"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, sheet := range sheets {
		attendees := lo.Map(sheet.Signups().IDs(), func(id signup.AttendeeID, _ int) string {
			return id.String()
		})
		table.Append([]string{
			sheet.SessionID().String(),
			colorizeStatus(sheet.Status()),
			fmt.Sprintf("%d", sheet.Capacity()),
			fmt.Sprintf("%d", sheet.Signups().Len()),
			strings.Join(attendees, ", "),
		})
	}
	table.Render()
}

func colorizeStatus(status signup.Status) string {
	switch status {
	case signup.StatusAvailable:
		return color.Green.Sprint(status)
	case signup.StatusFull:
		return color.Yellow.Sprint(status)
	case signup.StatusClosed:
		return color.Red.Sprint(status)
	default:
		return string(status)
	}
}
