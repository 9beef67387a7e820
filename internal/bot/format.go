package bot

import (
	"fmt"
	"strings"

	domain "github.com/autokeyhq/keyprice-bot/pkg/types"
)

// Fixed reply strings. The wording is load-bearing: downstream tooling and
// operators grep chat transcripts for these.
const (
	ReplyNotFound = "No matching record found for that vehicle."

	replyHelp = "Send a vehicle make, model, and year (for example: Toyota Corolla 2015) " +
		"to look up key pricing. You can also send just a make to browse models."

	replyCancelled = "Okay, cancelled. Send a make, model, and year to look up pricing."

	replyStaleNumber = "I don't have an active selection for that number. " +
		"Send a make, model, and year to start over."

	replyInvalidPrice = "Invalid price. Reply with \"<number> <new price>\" where the price is " +
		"between 0 and 9999 with up to 2 decimal places (for example: 2 195)."

	replyStoreFailure = "Something went wrong saving that update. Please try again later."

	replyUnaudited = "The price was updated, but the audit log entry could not be written. " +
		"Please report this to an administrator."

	replyNotAuthorized = "You are not authorized to update prices."

	replyLookupFailure = "Something went wrong looking that up. Please try again later."
)

// FormatVehicle renders the pricing reply for a matched record. The year
// argument is what the user asked for (a single year or a chosen range),
// not necessarily the record's own range. Empty price fields render as
// empty after the dollar sign.
func FormatVehicle(rec *domain.VehicleRecord, year string) string {
	return fmt.Sprintf(
		"%s %s %s\n\nKey: %s\nTurn Key Min: $%s\nRemote Min: $%s\nPush-to-Start Min: $%s\nIgnition Change/Fix Min: $%s",
		rec.Make, rec.Model, year,
		rec.KeyType,
		rec.KeyMinPrice,
		rec.RemoteMinPrice,
		rec.P2SMinPrice,
		rec.IgnitionMinPrice,
	)
}

func formatModelList(mk string, models []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Models for %s:\n", mk)
	for i, m := range models {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	b.WriteString("\nReply with a number or a model name.")
	return b.String()
}

func formatYearRangeList(mk, model string, ranges []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Year ranges for %s %s:\n", mk, model)
	for i, r := range ranges {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString("\nReply with a number or a year.")
	return b.String()
}

func formatNotFoundWithRanges(mk, model string, ranges []string) string {
	var b strings.Builder
	b.WriteString(ReplyNotFound)
	fmt.Fprintf(&b, "\n\nAvailable year ranges for %s %s:\n", mk, model)
	for i, r := range ranges {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString("\nReply with a number or a year.")
	return b.String()
}

func formatVehicleOptions(options []domain.VehicleRecord) string {
	var b strings.Builder
	b.WriteString("Multiple records share that year range:\n")
	for i, rec := range options {
		fmt.Fprintf(&b, "%d. %s %s %s (Key: %s)\n", i+1, rec.Make, rec.Model, rec.YearRange, rec.KeyType)
	}
	b.WriteString("\nReply with a number to select one.")
	return b.String()
}

func formatVehicleSelected(rec *domain.VehicleRecord) string {
	return fmt.Sprintf("Selected %s %s %s.\n\n%s\n\nSend 9 to update its prices.",
		rec.Make, rec.Model, rec.YearRange,
		FormatVehicle(rec, rec.YearRange))
}

func formatPriceMenu(rec *domain.VehicleRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Update pricing for %s %s %s:\n", rec.Make, rec.Model, rec.YearRange)
	for i := 1; i <= domain.NumPriceFields; i++ {
		f, _ := domain.PriceFieldByIndex(i)
		fmt.Fprintf(&b, "%d. %s: $%s\n", i, f.Label(), rec.Price(f))
	}
	b.WriteString("\nReply with \"<number> <new price>\" (for example: 2 195).")
	return b.String()
}

func formatUpdateConfirmation(rec *domain.VehicleRecord, field domain.PriceField, newValue string) string {
	return fmt.Sprintf("%s updated to $%s for %s %s %s. This applies to the entire %s year range.",
		field.Label(), newValue, rec.Make, rec.Model, rec.YearRange, rec.YearRange)
}

func formatNoModels(mk string) string {
	return fmt.Sprintf("No models found for %s. Check the spelling and try again.", mk)
}

func formatNoYearRanges(mk, model string) string {
	return fmt.Sprintf("No year ranges found for %s %s.", mk, model)
}

func formatNoRecordsForRange(mk, model, rng string) string {
	return fmt.Sprintf("No records found for %s %s %s.", mk, model, rng)
}

func formatReprompt(valid int) string {
	return fmt.Sprintf("Reply with a number between 1 and %d.", valid)
}
