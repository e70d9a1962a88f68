package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

// runScript feeds the console one input line per element and returns
// everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	svc := services.NewTaskService(zerolog.Nop(), storage.NewMemoryStore())
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}

	err := New(svc, in, out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestConsole_AddAndList(t *testing.T) {
	output := runScript(t,
		"add",
		"Buy milk",
		"",
		"add",
		"Write report",
		"Q3 summary",
		"list",
		"exit",
	)

	assert.Contains(t, output, "✓ Task #1 created: Buy milk")
	assert.Contains(t, output, "✓ Task #2 created: Write report")
	assert.Contains(t, output, "○ [1] Buy milk - PENDING")
	assert.Contains(t, output, "○ [2] Write report - PENDING")
	assert.Contains(t, output, "Description: Q3 summary")
	assert.Contains(t, output, "0 of 2 tasks completed")
}

func TestConsole_Complete(t *testing.T) {
	output := runScript(t,
		"add",
		"Buy milk",
		"",
		"complete",
		"1",
		"list",
		"exit",
	)

	assert.Contains(t, output, "✓ Task #1 marked completed")
	assert.Contains(t, output, "● [1] Buy milk - COMPLETED")
	assert.Contains(t, output, "1 of 1 tasks completed")
}

func TestConsole_UpdateKeepsBlankFields(t *testing.T) {
	output := runScript(t,
		"add",
		"Write report",
		"Q3 summary",
		"update",
		"1",
		"Write report v2",
		"",
		"list",
		"exit",
	)

	assert.Contains(t, output, "✓ Task #1 updated")
	assert.Contains(t, output, "[1] Write report v2 - PENDING")
	assert.Contains(t, output, "Description: Q3 summary")
}

func TestConsole_Delete(t *testing.T) {
	output := runScript(t,
		"add",
		"Buy milk",
		"",
		"delete",
		"1",
		"list",
		"exit",
	)

	assert.Contains(t, output, "✓ Task #1 deleted: Buy milk")
	assert.Contains(t, output, "No tasks found.")
}

func TestConsole_Errors(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		output := runScript(t,
			"add",
			"",
			"",
			"exit",
		)
		assert.Contains(t, output, "Error: Title cannot be empty.")
	})

	t.Run("unknown task id", func(t *testing.T) {
		output := runScript(t,
			"complete",
			"41",
			"exit",
		)
		assert.Contains(t, output, "Error: Task not found.")
	})

	t.Run("non-numeric task id", func(t *testing.T) {
		output := runScript(t,
			"delete",
			"abc",
			"exit",
		)
		assert.Contains(t, output, "Error: Task ID must be a number.")
	})

	t.Run("unknown command", func(t *testing.T) {
		output := runScript(t,
			"frobnicate",
			"exit",
		)
		assert.Contains(t, output, "Unknown command: frobnicate")
	})
}

func TestConsole_EOFExitsCleanly(t *testing.T) {
	svc := services.NewTaskService(zerolog.Nop(), storage.NewMemoryStore())
	out := &bytes.Buffer{}

	err := New(svc, strings.NewReader(""), out).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Goodbye!")
}
