// Package console implements the interactive single-user surface.
// It drives the task service over a line-oriented command loop with
// an in-memory store and one fixed implicit owner.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

// localOwner is the single implicit owner of every task created
// through the console.
const localOwner models.Owner = "local"

const (
	pendingSymbol   = "○"
	completedSymbol = "●"
)

// commands in menu order.
var commands = []struct {
	name        string
	description string
}{
	{"add", "Add new task"},
	{"list", "View all tasks"},
	{"update", "Update task"},
	{"delete", "Remove task"},
	{"complete", "Mark complete"},
	{"help", "Show this menu"},
	{"exit", "Exit application"},
}

type Console struct {
	tasks services.TaskService
	in    *bufio.Scanner
	out   io.Writer
}

func New(tasks services.TaskService, in io.Reader, out io.Writer) *Console {
	return &Console{
		tasks: tasks,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run reads commands until exit or EOF. Each command is processed to
// completion before the next line is read.
func (a *Console) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the Task Tracker console!")
	a.printMenu()

	for {
		line, ok := a.prompt("\n> ")
		if !ok {
			break
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		case "help":
			a.printMenu()
		case "add":
			a.handleAdd(ctx)
		case "list":
			a.handleList(ctx)
		case "update":
			a.handleUpdate(ctx)
		case "delete":
			a.handleDelete(ctx)
		case "complete":
			a.handleComplete(ctx)
		default:
			fmt.Fprintf(a.out, "Unknown command: %s. Type 'help' for available commands.\n", line)
		}
	}

	fmt.Fprintln(a.out, "Goodbye!")
	return a.in.Err()
}

func (a *Console) prompt(message string) (string, bool) {
	fmt.Fprint(a.out, message)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *Console) promptTaskID(message string) (int64, bool) {
	line, ok := a.prompt(message)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintln(a.out, "Error: Task ID must be a number.")
		return 0, false
	}
	return id, true
}

func (a *Console) handleAdd(ctx context.Context) {
	title, ok := a.prompt("Enter task title: ")
	if !ok {
		return
	}

	var description *string
	if line, ok := a.prompt("Enter task description (optional): "); ok && line != "" {
		description = &line
	}

	task, err := a.tasks.Add(ctx, localOwner, title, description)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "✓ Task #%d created: %s\n", task.ID, task.Title)
}

func (a *Console) handleList(ctx context.Context) {
	tasks, err := a.tasks.List(ctx, localOwner, services.ListTasksParams{})
	if err != nil {
		a.printError(err)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return
	}

	completed := 0
	for _, task := range tasks {
		a.printTask(task)
		if task.Completed {
			completed++
		}
	}
	fmt.Fprintf(a.out, "\n%d of %d tasks completed\n", completed, len(tasks))
}

func (a *Console) handleUpdate(ctx context.Context) {
	id, ok := a.promptTaskID("Enter task ID to update: ")
	if !ok {
		return
	}

	current, err := a.tasks.Get(ctx, localOwner, id)
	if err != nil {
		a.printError(err)
		return
	}

	params := services.UpdateTaskParams{ID: id}
	if line, ok := a.prompt(fmt.Sprintf("Enter new title (leave blank to keep '%s'): ", current.Title)); ok && line != "" {
		params.Title = &line
	}
	if line, ok := a.prompt("Enter new description (leave blank to keep current): "); ok && line != "" {
		params.Description = &line
	}

	task, err := a.tasks.Update(ctx, localOwner, params)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "✓ Task #%d updated\n", task.ID)
}

func (a *Console) handleDelete(ctx context.Context) {
	id, ok := a.promptTaskID("Enter task ID to delete: ")
	if !ok {
		return
	}

	task, err := a.tasks.Delete(ctx, localOwner, id)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "✓ Task #%d deleted: %s\n", task.ID, task.Title)
}

func (a *Console) handleComplete(ctx context.Context) {
	id, ok := a.promptTaskID("Enter task ID to toggle: ")
	if !ok {
		return
	}

	task, err := a.tasks.Toggle(ctx, localOwner, id)
	if err != nil {
		a.printError(err)
		return
	}

	state := "pending"
	if task.Completed {
		state = "completed"
	}
	fmt.Fprintf(a.out, "✓ Task #%d marked %s\n", task.ID, state)
}

func (a *Console) printTask(task *models.Task) {
	symbol := pendingSymbol
	state := "PENDING"
	if task.Completed {
		symbol = completedSymbol
		state = "COMPLETED"
	}

	fmt.Fprintf(a.out, "%s [%d] %s - %s\n", symbol, task.ID, task.Title, state)
	if task.Description != nil && *task.Description != "" {
		fmt.Fprintf(a.out, "    Description: %s\n", *task.Description)
	}
}

func (a *Console) printError(err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(a.out, "Error: %s\n", validationErr.Message)
	case errors.Is(err, storage.ErrTaskNotFound):
		fmt.Fprintln(a.out, "Error: Task not found.")
	default:
		fmt.Fprintf(a.out, "Unexpected error: %v\n", err)
	}
}

func (a *Console) printMenu() {
	fmt.Fprintln(a.out, "Available commands:")
	for _, cmd := range commands {
		fmt.Fprintf(a.out, "  %-8s - %s\n", cmd.name, cmd.description)
	}
}
