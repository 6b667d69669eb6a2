package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/astroscan/astroscan/internal/errors"
)

// decode round-trips the request arguments through JSON into a typed input
// struct. A shape mismatch is the caller's mistake, so it comes back as an
// INVALID_INPUT reading error ready for the tool result envelope.
func decode[T any](req mcp.CallToolRequest) (T, *errors.ReadingError) {
	var input T
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return input, errors.NewInvalidInput(fmt.Sprintf("unreadable arguments: %v", err))
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, errors.NewInvalidInput(fmt.Sprintf("malformed arguments: %v", err))
	}
	return input, nil
}
