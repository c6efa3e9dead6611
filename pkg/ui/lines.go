package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"jha_chat/pkg/ai"
	"jha_chat/pkg/commands"
)

// RunLines answers one question per input line until in is exhausted or ctx
// is done. It is used when stdin is not a terminal.
func RunLines(ctx context.Context, assistant Assistant, userName string, in io.Reader, out io.Writer, clip Clipboard) error {
	dispatcher := commands.NewDispatcher()
	var history []ai.ChatMessage

	writeReply(out, assistant.Welcome(userName).Message)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if commands.IsCommand(text) {
			result := dispatcher.Dispatch(text, commands.NewContext(assistant, userName, history))
			switch result.Action {
			case commands.ResultActionReply:
				writeReply(out, result.Response.Message)
			case commands.ResultActionClear:
				history = nil
				fmt.Fprintln(out, result.Content)
			case commands.ResultActionCopy:
				if err := clip.Copy(result.Content); err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintln(out, "Copied the last answer to the clipboard.")
			case commands.ResultActionQuit:
				return nil
			default:
				fmt.Fprintln(out, result.Content)
			}
			continue
		}

		prompt := ai.NewUserMessage(text)
		resp, err := assistant.SendMessage(ctx, text, history)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		history = append(history, prompt, resp.AsMessage())
		writeReply(out, resp.Message)
	}
	return scanner.Err()
}

func writeReply(out io.Writer, message string) {
	fmt.Fprintf(out, "Jha: %s\n", message)
}
