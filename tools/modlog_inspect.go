package main

import (
	"context"
	"flag"
	"fmt"
	"forum-lab/contract"
	"forum-lab/domain"
	"forum-lab/repositories"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Prints the moderation log of a node, newest first.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	postID := flag.Int64("post", 0, "Only show the records of this post")
	limit := flag.Int("limit", 20, "Records per page")
	all := flag.Bool("all", false, "Follow the cursor until the log is exhausted")
	flag.Parse()

	// Read only, the node may still be running.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewForumRepository(db, logs.GetLoggerFromLevel(slog.LevelError), *limit)
	filter := contract.AuditFilter{Limit: *limit}
	if *postID > 0 {
		filter.PostID = lo.ToPtr(domain.PostID(*postID))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"When", "Action", "Moderator", "Post", "Community", "State", "Reason"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	for {
		records, cursor, err := repository.ListAudit(context.Background(), filter)
		if err != nil {
			log.Fatal(err)
		}
		for _, record := range records {
			table.Append(row(record))
		}
		count += len(records)
		if cursor == nil || !*all {
			break
		}
		filter.Cursor = cursor
	}

	table.Render()
	fmt.Printf("\n%d records\n", count)
}

func row(record domain.AuditRecord) []string {
	return []string{
		record.At.Local().Format("2006-01-02 15:04:05"),
		colorAction(record.Action),
		strconv.FormatInt(int64(record.ActorID), 10),
		strconv.FormatInt(int64(record.PostID), 10),
		strconv.FormatInt(int64(record.CommunityID), 10),
		state(record),
		lo.FromPtr(record.Reason),
	}
}

func colorAction(action domain.AuditAction) string {
	switch action {
	case domain.ActionRemovePost:
		return color.Red.Sprint(action)
	case domain.ActionLockPost:
		return color.Yellow.Sprint(action)
	default:
		return color.Green.Sprint(action)
	}
}

func state(record domain.AuditRecord) string {
	switch {
	case record.Locked != nil:
		return fmt.Sprintf("locked=%t", *record.Locked)
	case record.Featured != nil:
		return fmt.Sprintf("featured=%t", *record.Featured)
	case record.Removed != nil:
		return fmt.Sprintf("removed=%t", *record.Removed)
	default:
		return "-"
	}
}
