package telegram

import (
	"Unbewohnte/TruthVerifier/internal/verification"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	ollama "github.com/ollama/ollama/api"
)

type fakeVerifier struct {
	requests []verification.Request
	report   verification.HealthReport
}

func (v *fakeVerifier) Verify(ctx context.Context, request verification.Request) verification.Result {
	v.requests = append(v.requests, request)
	return verification.Result{
		Credibility:      verification.HighlyCredible,
		Score:            92,
		Transcription:    verification.StubTranscription,
		VisualAnalysis:   verification.StubVisualAnalysis,
		Conclusion:       "Looks legit" + verification.Disclaimer,
		FactCheckResults: []verification.FactCheck{},
	}
}

func (v *fakeVerifier) CheckInferenceServer(ctx context.Context) (verification.HealthReport, int) {
	if v.report.Status == verification.StatusError {
		return v.report, http.StatusInternalServerError
	}
	return v.report, http.StatusOK
}

func TestRespondBareURL(t *testing.T) {
	verifier := &fakeVerifier{}
	bot := newBot(verifier, false)

	response, err := bot.respond(context.Background(), "https://instagram.com/reel/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verifier.requests) != 1 || verifier.requests[0].URL != "https://instagram.com/reel/abc" {
		t.Fatalf("url was not verified: %+v", verifier.requests)
	}
	if !strings.Contains(response, "✅ *Highly Credible*") || !strings.Contains(response, "92%") {
		t.Fatalf("unexpected response %q", response)
	}
}

func TestRespondVerifyCommand(t *testing.T) {
	verifier := &fakeVerifier{}
	bot := newBot(verifier, false)

	if _, err := bot.respond(context.Background(), "/verify@TruthBot https://tiktok.com/@a/video/1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(verifier.requests) != 1 || verifier.requests[0].URL != "https://tiktok.com/@a/video/1" {
		t.Fatalf("unexpected requests %+v", verifier.requests)
	}

	if _, err := bot.respond(context.Background(), "verify"); err == nil {
		t.Fatal("expected error for verify without url")
	}
}

func TestRespondUnknownCommandSuggests(t *testing.T) {
	bot := newBot(&fakeVerifier{}, false)

	response, err := bot.respond(context.Background(), "verfy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(response, "Неизвестная команда") || !strings.Contains(response, "`verify`") {
		t.Fatalf("expected suggestion for verify, got %q", response)
	}
}

func TestHealthAndModels(t *testing.T) {
	verifier := &fakeVerifier{report: verification.HealthReport{
		Status:  verification.StatusSuccess,
		Message: "Ollama is running!",
		Models: &[]ollama.ListModelResponse{{
			Name:    "llama3:latest",
			Details: ollama.ModelDetails{ParameterSize: "8.0B", QuantizationLevel: "Q4_0"},
		}},
	}}
	bot := newBot(verifier, false)

	response, err := bot.respond(context.Background(), "models")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(response, "`llama3:latest` (8.0B, Q4_0)") {
		t.Fatalf("unexpected models response %q", response)
	}

	verifier.report = verification.HealthReport{Status: verification.StatusError, Message: "Cannot connect to Ollama", Error: "connection refused"}
	if _, err := bot.respond(context.Background(), "health"); err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected health error, got %v", err)
	}
}

func TestHelpListsCommands(t *testing.T) {
	bot := newBot(&fakeVerifier{}, false)

	response, err := bot.respond(context.Background(), "help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"help", "about", "verify", "health", "models"} {
		if !strings.Contains(response, "\""+name+"\"") {
			t.Fatalf("help is missing %q", name)
		}
	}
}

func TestMinDistance(t *testing.T) {
	if d := minDistance("verfy", "verify"); d != 1 {
		t.Fatalf("expected 1 got %d", d)
	}
	if d := minDistance("", "help"); d != 4 {
		t.Fatalf("expected 4 got %d", d)
	}
}

func TestReceiveStopsOnCancel(t *testing.T) {
	bot := newBot(&fakeVerifier{}, false)
	updates := make(chan tgbotapi.Update, 2)
	handled := make(chan string, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bot.receive(ctx, updates, func(message *tgbotapi.Message) {
			handled <- message.Text
		})
		close(done)
	}()

	updates <- tgbotapi.Update{UpdateID: 1}
	updates <- tgbotapi.Update{UpdateID: 2, Message: &tgbotapi.Message{Text: "help"}}

	select {
	case text := <-handled:
		if text != "help" {
			t.Fatalf("unexpected message %q", text)
		}
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("receive did not stop after cancel")
	}

	select {
	case text := <-handled:
		t.Fatalf("update without message was handled: %q", text)
	default:
	}
}
