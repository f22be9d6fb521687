package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadi/mendly/internal/companion"
	"github.com/fadi/mendly/internal/screens/chat"
	"github.com/fadi/mendly/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk with the companion line by line, without the full-screen UI",
	Long: `Talk with the companion from a plain prompt. Each message you send is
stored with a mood estimate, like in the app. Use --no-save for a
conversation that leaves no history. An empty line or end of input ends
the conversation.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().Bool("no-save", false, "Do not store the conversation or mood estimates")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var (
		eventRepo store.EventRepo
		chatRepo  store.ChatRepo
		moodRepo  store.MoodRepo
	)
	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		eventRepo, chatRepo, moodRepo = st.EventRepo(), st.ChatRepo(), st.MoodRepo()
	}

	responder, err := newResponder(ctx, eventRepo)
	if err != nil {
		return err
	}
	session := companion.NewSession(responder, chatRepo, moodRepo, logger)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(chat.Greeting)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		msg := strings.TrimSpace(scanner.Text())
		if msg == "" {
			break
		}

		reply, err := session.Send(ctx, msg)
		if err != nil {
			fmt.Printf("\033[31mSorry, I couldn't answer just now: %v\033[0m\n", err)
			continue
		}
		fmt.Printf("\nmendly> %s\n", reply.Text)
	}
	fmt.Println("Take care.")
	return scanner.Err()
}
