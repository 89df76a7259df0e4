package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/akimenko/securevault/internal/app"
	"github.com/akimenko/securevault/internal/gate"
	"github.com/akimenko/securevault/internal/logger"
	"github.com/akimenko/securevault/models"
)

// repl is the interactive command loop of the vault binary.
type repl struct {
	gate *gate.Gate
	in   *bufio.Reader
	out  io.Writer
	log  *logger.Logger
}

func newRepl(g *gate.Gate, in *bufio.Reader, out io.Writer, log *logger.Logger) *repl {
	return &repl{gate: g, in: in, out: out, log: log}
}

const replHelp = `commands:
  login                       authenticate and unlock the vault
  logout                      lock the vault
  status                      session state and sensor label
  list [category]             list notes, optionally one category
  show <id>                   print one note
  add <category> <title>      create a note (content is prompted)
  edit <id> title|content     rewrite one field (new text is prompted)
  delete <id>                 remove a note
  settings                    show preferences
  settings biometric on|off   toggle biometric authentication
  settings require on|off     toggle challenges for sensitive actions
  export [-copy]              print the vault JSON, or copy to clipboard
  wipe                        destroy all vault data
  exit`

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "securevault - type 'help' for commands")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.out, "> ")

		line, err := r.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}

		r.dispatch(ctx, fields[0], fields[1:])
	}
}

func (r *repl) dispatch(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "help":
		fmt.Fprintln(r.out, replHelp)
	case "login":
		err = r.login(ctx)
	case "logout":
		r.gate.Logout(ctx)
		fmt.Fprintln(r.out, "locked")
	case "status":
		r.status(ctx)
	case "list":
		err = r.list(ctx, args)
	case "show":
		err = r.show(ctx, args)
	case "add":
		err = r.add(ctx, args)
	case "edit":
		err = r.edit(ctx, args)
	case "delete":
		err = r.delete(ctx, args)
	case "settings":
		err = r.settings(ctx, args)
	case "export":
		err = r.export(ctx, args)
	case "wipe":
		err = r.wipe(ctx)
	default:
		fmt.Fprintf(r.out, "unknown command %q, type 'help'\n", command)
	}

	if err != nil {
		r.log.Debug().Err(err).Str("command", command).Msg("command failed")
		fmt.Fprintln(r.out, app.UserMessage(err))
	}
}

func (r *repl) login(ctx context.Context) error {
	if err := r.gate.Login(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "unlocked")
	return nil
}

func (r *repl) status(ctx context.Context) {
	fmt.Fprintf(r.out, "session: %s\nsensor:  %s\n", r.gate.State(), r.gate.CapabilityLabel(ctx))
}

func (r *repl) list(ctx context.Context, args []string) error {
	var notes []models.Note
	var err error

	if len(args) > 0 {
		notes, err = r.gate.ListNotesByCategory(ctx, models.Category(args[0]))
	} else {
		notes, err = r.gate.ListNotes(ctx)
	}
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(r.out, "no notes")
		return nil
	}
	for _, note := range notes {
		marker := " "
		if note.Category.Sensitive() {
			marker = "*"
		}
		fmt.Fprintf(r.out, "%s %-36s  %-10s  %s\n", marker, note.ID, note.Category, note.Title)
	}
	return nil
}

func (r *repl) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: show <id>")
		return nil
	}

	note, err := r.gate.GetNote(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "title:    %s\ncategory: %s\ncreated:  %s\nupdated:  %s\n\n%s\n",
		note.Title, note.Category,
		note.CreatedAt.Format("2006-01-02 15:04"),
		note.UpdatedAt.Format("2006-01-02 15:04"),
		note.Content)
	return nil
}

func (r *repl) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(r.out, "usage: add <category> <title>")
		return nil
	}

	category := models.Category(args[0])
	title := strings.Join(args[1:], " ")

	content, err := r.promptLine("content: ")
	if err != nil {
		return err
	}

	note, err := r.gate.AddNote(ctx, title, content, category)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "created %s\n", note.ID)
	return nil
}

func (r *repl) edit(ctx context.Context, args []string) error {
	if len(args) != 2 || (args[1] != "title" && args[1] != "content") {
		fmt.Fprintln(r.out, "usage: edit <id> title|content")
		return nil
	}

	text, err := r.promptLine("new " + args[1] + ": ")
	if err != nil {
		return err
	}

	var patch models.NotePatch
	if args[1] == "title" {
		patch.Title = &text
	} else {
		patch.Content = &text
	}

	note, err := r.gate.UpdateNote(ctx, args[0], patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "updated %s\n", note.ID)
	return nil
}

func (r *repl) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: delete <id>")
		return nil
	}

	removed, err := r.gate.DeleteNote(ctx, args[0])
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintln(r.out, "deleted")
	} else {
		fmt.Fprintln(r.out, "nothing to delete")
	}
	return nil
}

func (r *repl) settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		settings, err := r.gate.GetSettings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "biometric enabled:          %t\nrequire for sensitive:      %t\n", settings.BiometricEnabled, settings.RequireBiometricForSensitiveActions)
		if settings.LastBackupDate != nil {
			fmt.Fprintf(r.out, "last backup:                %s\n", settings.LastBackupDate.Format("2006-01-02 15:04"))
		}
		return nil
	}

	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		fmt.Fprintln(r.out, "usage: settings [biometric|require on|off]")
		return nil
	}

	value := args[1] == "on"
	var patch models.SettingsPatch
	switch args[0] {
	case "biometric":
		patch.BiometricEnabled = &value
	case "require":
		patch.RequireBiometricForSensitiveActions = &value
	default:
		fmt.Fprintln(r.out, "usage: settings [biometric|require on|off]")
		return nil
	}

	if _, err := r.gate.UpdateSettings(ctx, patch); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "saved")
	return nil
}

func (r *repl) export(ctx context.Context, args []string) error {
	payload, err := r.gate.ExportSnapshot(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "-copy" {
		if err := clipboard.WriteAll(payload); err != nil {
			return fmt.Errorf("copy export to clipboard: %w", err)
		}
		fmt.Fprintln(r.out, "export copied to clipboard")
		return nil
	}

	fmt.Fprintln(r.out, payload)
	return nil
}

func (r *repl) wipe(ctx context.Context) error {
	confirmation, err := r.promptLine("type 'wipe' to destroy all data: ")
	if err != nil {
		return err
	}
	if confirmation != "wipe" {
		fmt.Fprintln(r.out, "aborted")
		return nil
	}

	if err := r.gate.WipeAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "all data removed")
	return nil
}

func (r *repl) promptLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
