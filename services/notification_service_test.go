package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
)

func TestNewNotifierSelectsStrategy(t *testing.T) {
	configslog.InitLogger()

	cases := []struct {
		method string
		want   string
	}{
		{"redirect", "*services.RedirectNotifier"},
		{"", "*services.RedirectNotifier"},
		{"ultramsg", "*services.UltraMsgNotifier"},
		{"twilio", "*services.TwilioNotifier"},
		{"telegram", "*services.NoopNotifier"},
	}
	for _, tc := range cases {
		n := NewNotifier(NotificationConfig{Method: tc.method})
		var got string
		switch n.(type) {
		case *RedirectNotifier:
			got = "*services.RedirectNotifier"
		case *UltraMsgNotifier:
			got = "*services.UltraMsgNotifier"
		case *TwilioNotifier:
			got = "*services.TwilioNotifier"
		case *NoopNotifier:
			got = "*services.NoopNotifier"
		}
		if got != tc.want {
			t.Errorf("NewNotifier(%q) = %s, want %s", tc.method, got, tc.want)
		}
	}
}

func TestRedirectNotifierBuildsDeepLink(t *testing.T) {
	setting := &models.Setting{
		WhatsappNumber:  "905551112233",
		MessageTemplate: models.DefaultMessageTemplate,
	}
	n := &RedirectNotifier{}

	result, err := n.Notify(context.Background(), setting, Submission{Name: "Ali Veli", Phone: "5551112233"})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	want := "https://api.whatsapp.com/send?phone=905551112233&text=Yeni Randevu:%0AAd:%20Ali%20Veli%0ATelefon:%205551112233%0ATarih:%20%0AMesaj:%20"
	if result.RedirectURL != want {
		t.Errorf("RedirectURL = %q, want %q", result.RedirectURL, want)
	}
}

func TestRedirectNotifierFallsBackToDefaultNumber(t *testing.T) {
	setting := &models.Setting{MessageTemplate: "{{name}}"}
	n := &RedirectNotifier{defaultNumber: "902223334455"}

	result, err := n.Notify(context.Background(), setting, Submission{Name: "Ali", Phone: "1"})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if result.RedirectURL != "https://api.whatsapp.com/send?phone=902223334455&text=Ali" {
		t.Errorf("RedirectURL = %q", result.RedirectURL)
	}
}

func TestUltraMsgNotifierSendsChatMessage(t *testing.T) {
	configslog.InitLogger()

	var gotPath string
	var gotPayload ultraMsgPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := &UltraMsgNotifier{
		instance: "instance42",
		token:    "secret",
		baseURL:  srv.URL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
	setting := &models.Setting{
		WhatsappNumber:  "905551112233",
		MessageTemplate: "Ad:%20{{name}}",
	}

	if _, err := n.Notify(context.Background(), setting, Submission{Name: "Ali Veli", Phone: "1"}); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if gotPath != "/instance42/messages/chat" {
		t.Errorf("path = %q", gotPath)
	}
	if gotPayload.Token != "secret" {
		t.Errorf("token = %q", gotPayload.Token)
	}
	if gotPayload.To != "+905551112233" {
		t.Errorf("to = %q", gotPayload.To)
	}
	if gotPayload.Body != "Ad: Ali Veli" {
		t.Errorf("body = %q", gotPayload.Body)
	}
}

func TestUltraMsgNotifierErrorResponse(t *testing.T) {
	configslog.InitLogger()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := &UltraMsgNotifier{
		instance: "instance42",
		token:    "kötü-token",
		baseURL:  srv.URL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
	setting := &models.Setting{WhatsappNumber: "1", MessageTemplate: "x"}

	if _, err := n.Notify(context.Background(), setting, Submission{}); err == nil {
		t.Fatal("hata yanıtında error beklenirdi")
	}
}

func TestUltraMsgNotifierMissingConfig(t *testing.T) {
	n := &UltraMsgNotifier{}
	_, err := n.Notify(context.Background(), &models.Setting{}, Submission{})
	if err != ErrNotificationConfigMissing {
		t.Errorf("err = %v, want %v", err, ErrNotificationConfigMissing)
	}
}

func TestTwilioNotifierMissingConfig(t *testing.T) {
	n := &TwilioNotifier{}
	_, err := n.Notify(context.Background(), &models.Setting{}, Submission{})
	if err != ErrNotificationConfigMissing {
		t.Errorf("err = %v, want %v", err, ErrNotificationConfigMissing)
	}
}

func TestNoopNotifierAlwaysSucceeds(t *testing.T) {
	n := &NoopNotifier{}
	result, err := n.Notify(context.Background(), nil, Submission{})
	if err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if result.RedirectURL != "" {
		t.Errorf("RedirectURL = %q, boş beklenirdi", result.RedirectURL)
	}
}
