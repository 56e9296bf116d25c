// Package parser turns free-text WhatsApp messages into structured hotel
// commands. The grammar is deliberately small: operators type commands like
// "Block room 105 from 2025-07-10 to 2025-07-17" or "Set price to ₹1500 on
// 2025-07-12". Anything else is unrecognized; dispatching and any smarter
// interpretation live outside this layer.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const (
	IntentBlockRoom = "block_room"
	IntentSetPrice  = "set_price"
	IntentUnknown   = "unknown"
)

var ErrUnrecognized = errors.New("unrecognized command")

var (
	blockPattern = regexp.MustCompile(`(?i)block room (\d+) from (.+?) to (.+)`)
	pricePattern = regexp.MustCompile(`(?i)set price to ₹?(\d+(?:\.\d{1,2})?) on (.+)`)
)

// Command is the structured form of a parsed message. Only the fields
// relevant to the intent are populated.
type Command struct {
	Intent string
	Room   string
	From   string
	To     string
	Price  string
	Date   string
}

// Parse matches message against the command grammar. On no match it returns
// a Command with IntentUnknown and ErrUnrecognized.
func Parse(message string) (Command, error) {
	message = strings.TrimSpace(message)

	if match := blockPattern.FindStringSubmatch(message); match != nil {
		return Command{
			Intent: IntentBlockRoom,
			Room:   match[1],
			From:   strings.TrimSpace(match[2]),
			To:     strings.TrimSpace(match[3]),
		}, nil
	}

	if match := pricePattern.FindStringSubmatch(message); match != nil {
		return Command{
			Intent: IntentSetPrice,
			Price:  match[1],
			Date:   strings.TrimSpace(match[2]),
		}, nil
	}

	return Command{Intent: IntentUnknown}, ErrUnrecognized
}
