package assistant

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrResponderNotInitialized = fmt.Errorf("assistant responder is not initialized")

// fallbackReply is shown whenever the completion call fails. The widget
// must always answer something supportive.
const fallbackReply = "I'm here with you. Tell me a little more about how you're feeling, and we'll take it one step at a time."

// Completer generates free-form text for a prompt. Implemented by the
// external completion client and mocked in tests.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// script is a canned reply selected by keyword before any completion call
// is made.
type script struct {
	keywords []string
	reply    string
}

var scripts = []script{
	{
		keywords: []string{"sleep", "insomnia", "tired at night", "can't fall asleep"},
		reply:    "Sleep can be fragile when the day is heavy. Keeping the same bedtime tonight, even if you don't feel sleepy, is a gentle first step.",
	},
	{
		keywords: []string{"pain", "hurt", "ache", "sore"},
		reply:    "I'm sorry you're in discomfort. Note where it hurts in today's check-in, and if it sharpens or spreads, please reach out to a professional.",
	},
	{
		keywords: []string{"anxious", "anxiety", "worried", "nervous"},
		reply:    "That sounds stressful. Try a slow breath: in for four counts, out for six. I'll stay right here while you do.",
	},
	{
		keywords: []string{"sad", "lonely", "depressed", "down"},
		reply:    "Thank you for telling me. Feelings like this deserve care, not judgment. A small kind act toward yourself today counts.",
	},
	{
		keywords: []string{"hello", "hi ", "good morning", "안녕"},
		reply:    "Hello! I'm glad you stopped by. How is your body feeling today?",
	},
}

// Responder answers chat messages: scripted when a keyword matches,
// completion-backed otherwise, and a static supportive line when the
// completion call fails.
type Responder struct {
	completer Completer
}

func NewResponder(completer Completer) *Responder {
	return &Responder{completer: completer}
}

// scriptedReply returns the canned response for a message, if any script
// matches.
func scriptedReply(message string) (string, bool) {
	text := strings.ToLower(message)
	for _, s := range scripts {
		for _, kw := range s.keywords {
			if strings.Contains(text, kw) {
				return s.reply, true
			}
		}
	}
	return "", false
}

// buildPrompt frames the user's message for the completion API. The
// assistant persona is a supportive wellness companion, never a clinician.
func buildPrompt(message string) string {
	var b strings.Builder
	b.WriteString("You are Teresa, a warm and supportive wellness companion. ")
	b.WriteString("You encourage healthy daily habits and gentle self-care. ")
	b.WriteString("You never diagnose, prescribe, or contradict medical advice; for anything serious you suggest seeing a professional. ")
	b.WriteString("Reply in at most three sentences.\n\nUser: ")
	b.WriteString(message)
	b.WriteString("\nTeresa:")
	return b.String()
}

// Reply answers one chat message. The second return value reports whether
// the answer came from the script table.
func (r *Responder) Reply(ctx context.Context, message string) (string, bool) {
	if reply, ok := scriptedReply(message); ok {
		return reply, true
	}

	if r.completer == nil {
		return fallbackReply, false
	}

	reply, err := r.completer.Complete(ctx, buildPrompt(message))
	if err != nil {
		log.WithError(err).WithField("prefix", "assistant").Warn("completion failed, using fallback reply")
		return fallbackReply, false
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fallbackReply, false
	}
	return reply, false
}

var defaultResponder *Responder

func SetResponder(responder *Responder) {
	defaultResponder = responder
}

// Reply answers using the package default responder.
func Reply(ctx context.Context, message string) (string, bool, error) {
	if defaultResponder == nil {
		return "", false, ErrResponderNotInitialized
	}
	reply, scripted := defaultResponder.Reply(ctx, message)
	return reply, scripted, nil
}
