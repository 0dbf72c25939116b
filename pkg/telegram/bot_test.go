package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-assistant/pkg/telegram"
)

func newTestBot(handler http.HandlerFunc) (*telegram.Bot, *httptest.Server) {
	ts := httptest.NewServer(handler)
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, ts
}

func TestSetWebhook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotURL string
		bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/setWebhook" {
				t.Errorf("path = %s", r.URL.Path)
			}
			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			gotURL = payload["url"]
			w.Write([]byte(`{"ok": true}`))
		})
		defer ts.Close()

		if err := bot.SetWebhook("https://example.com/webhook/telegram"); err != nil {
			t.Fatalf("SetWebhook: %v", err)
		}
		if gotURL != "https://example.com/webhook/telegram" {
			t.Errorf("registered url = %q", gotURL)
		}
	})

	t.Run("api rejection", func(t *testing.T) {
		bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok": false, "description": "bad webhook url"}`))
		})
		defer ts.Close()

		err := bot.SetWebhook("not-a-url")
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got telegram.SendMessageRequest
		bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sendMessage" {
				t.Errorf("path = %s", r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"ok": true}`))
		})
		defer ts.Close()

		if err := bot.SendMessage(42, "You're all set!"); err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		if got.ChatID != 42 || got.Text != "You're all set!" {
			t.Errorf("payload = %+v", got)
		}
		if got.ParseMode != "" {
			t.Errorf("plain message carried parse mode %q", got.ParseMode)
		}
	})

	t.Run("with parse mode", func(t *testing.T) {
		var got telegram.SendMessageRequest
		bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"ok": true}`))
		})
		defer ts.Close()

		if err := bot.SendMessageWithMode(42, "*done*", "Markdown"); err != nil {
			t.Fatalf("SendMessageWithMode: %v", err)
		}
		if got.ParseMode != "Markdown" {
			t.Errorf("parse mode = %q", got.ParseMode)
		}
	})

	t.Run("api error status", func(t *testing.T) {
		bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
		})
		defer ts.Close()

		if err := bot.SendMessage(42, "hello"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestSendTyping(t *testing.T) {
	var got map[string]any
	bot, ts := newTestBot(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendChatAction" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok": true}`))
	})
	defer ts.Close()

	if err := bot.SendTyping(42); err != nil {
		t.Fatalf("SendTyping: %v", err)
	}
	if got["action"] != "typing" || got["chat_id"] != float64(42) {
		t.Errorf("payload = %v", got)
	}
}
