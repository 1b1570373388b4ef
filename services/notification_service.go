package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"lezzet.link/configs/configslog"
	"lezzet.link/models"
	"lezzet.link/pkg/watemplate"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// NotificationServiceError özel servis hataları
type NotificationServiceError string

func (e NotificationServiceError) Error() string { return string(e) }

const (
	ErrNotificationFailed        NotificationServiceError = "bildirim gönderilemedi"
	ErrNotificationConfigMissing NotificationServiceError = "bildirim sağlayıcı yapılandırması eksik"
)

// Bildirim yöntemleri (WHATSAPP_METHOD).
const (
	MethodRedirect = "redirect"
	MethodUltraMsg = "ultramsg"
	MethodTwilio   = "twilio"
)

// Submission form gönderiminden gelen, şablona yerleştirilecek veriler.
type Submission struct {
	Name    string
	Phone   string
	Date    string
	Message string
}

// NotifyResult bildirim sonucu. RedirectURL sadece redirect modunda doludur;
// istemci bu URL'e kendisi yönlenir.
type NotifyResult struct {
	RedirectURL string
}

// Notifier yeni randevu bildirimini seçilen stratejiyle iletir.
// Uygulama başında yapılandırmadan bir kez seçilir; istek başına dallanma yoktur.
type Notifier interface {
	Notify(ctx context.Context, setting *models.Setting, data Submission) (*NotifyResult, error)
}

// NotificationConfig ortam değişkenlerinden okunan sağlayıcı ayarları.
type NotificationConfig struct {
	Method           string
	DefaultNumber    string
	UltraMsgInstance string
	UltraMsgToken    string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

// LoadNotificationConfig ortam değişkenlerini okur.
func LoadNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Method:           strings.ToLower(os.Getenv("WHATSAPP_METHOD")),
		DefaultNumber:    os.Getenv("WHATSAPP_NUMBER"),
		UltraMsgInstance: os.Getenv("ULTRA_MSG_INSTANCE"),
		UltraMsgToken:    os.Getenv("ULTRA_MSG_TOKEN"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_WHATSAPP_FROM"),
	}
}

// NewNotifier yapılandırmadaki yönteme göre stratejiyi seçer.
// Boş yöntem redirect sayılır; tanınmayan yöntemler sessizce no-op olur.
func NewNotifier(cfg NotificationConfig) Notifier {
	switch cfg.Method {
	case MethodRedirect, "":
		return &RedirectNotifier{defaultNumber: cfg.DefaultNumber}
	case MethodUltraMsg:
		return &UltraMsgNotifier{
			instance:      cfg.UltraMsgInstance,
			token:         cfg.UltraMsgToken,
			defaultNumber: cfg.DefaultNumber,
			baseURL:       "https://api.ultramsg.com",
			client:        &http.Client{Timeout: 15 * time.Second},
		}
	case MethodTwilio:
		return &TwilioNotifier{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: cfg.TwilioAccountSID,
				Password: cfg.TwilioAuthToken,
			}),
			from:          cfg.TwilioFrom,
			defaultNumber: cfg.DefaultNumber,
		}
	default:
		configslog.SLog.Warnf("Bilinmeyen WHATSAPP_METHOD: %s, bildirim gönderilmeyecek", cfg.Method)
		return &NoopNotifier{}
	}
}

// NewNotifierFromEnv ortam değişkenlerinden stratejiyi kurar (main için).
func NewNotifierFromEnv() Notifier {
	return NewNotifier(LoadNotificationConfig())
}

// recipientNumber ayarlardaki numarayı, boşsa ortamdaki varsayılanı döndürür.
func recipientNumber(setting *models.Setting, fallback string) string {
	if setting != nil && setting.WhatsappNumber != "" {
		return setting.WhatsappNumber
	}
	return fallback
}

func templateData(data Submission) watemplate.Data {
	return watemplate.Data{
		Name:    data.Name,
		Phone:   data.Phone,
		Date:    data.Date,
		Message: data.Message,
	}
}

// --- redirect ---

// RedirectNotifier ağ çağrısı yapmaz; istemcinin açacağı WhatsApp deep link'ini üretir.
type RedirectNotifier struct {
	defaultNumber string
}

// Notify şablonu URL-encode modunda doldurup deep link döndürür.
func (n *RedirectNotifier) Notify(_ context.Context, setting *models.Setting, data Submission) (*NotifyResult, error) {
	number := recipientNumber(setting, n.defaultNumber)
	text := watemplate.Render(setting.MessageTemplate, templateData(data), watemplate.ModeURL)
	url := fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", number, text)
	return &NotifyResult{RedirectURL: url}, nil
}

// --- ultramsg ---

// UltraMsgNotifier UltraMsg chat API'sine JSON POST atar.
type UltraMsgNotifier struct {
	instance      string
	token         string
	defaultNumber string
	baseURL       string
	client        *http.Client
}

type ultraMsgPayload struct {
	Token string `json:"token"`
	To    string `json:"to"`
	Body  string `json:"body"`
}

// Notify mesaj gövdesini düz metin olarak UltraMsg'e gönderir.
// Alıcı numarası '+' önekiyle formatlanır.
func (n *UltraMsgNotifier) Notify(ctx context.Context, setting *models.Setting, data Submission) (*NotifyResult, error) {
	if n.instance == "" || n.token == "" {
		return nil, ErrNotificationConfigMissing
	}

	payload := ultraMsgPayload{
		Token: n.token,
		To:    "+" + recipientNumber(setting, n.defaultNumber),
		Body:  watemplate.Render(setting.MessageTemplate, templateData(data), watemplate.ModeRaw),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/messages/chat", n.baseURL, n.instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		configslog.Log.Error("UltraMsg isteği başarısız", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		configslog.Log.Error("UltraMsg hata yanıtı",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: %s", ErrNotificationFailed, resp.Status)
	}
	return &NotifyResult{}, nil
}

// --- twilio ---

// TwilioNotifier mesajı Twilio WhatsApp API'si üzerinden gönderir.
type TwilioNotifier struct {
	client        *twilio.RestClient
	from          string
	defaultNumber string
}

// Notify alıcıyı 'whatsapp:+' önekiyle formatlayıp Twilio'ya iletir.
func (n *TwilioNotifier) Notify(_ context.Context, setting *models.Setting, data Submission) (*NotifyResult, error) {
	if n.from == "" {
		return nil, ErrNotificationConfigMissing
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo("whatsapp:+" + recipientNumber(setting, n.defaultNumber))
	params.SetBody(watemplate.Render(setting.MessageTemplate, templateData(data), watemplate.ModeRaw))

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		configslog.Log.Error("Twilio mesajı gönderilemedi", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	return &NotifyResult{}, nil
}

// --- fallback ---

// NoopNotifier tanınmayan yöntemlerde hiçbir şey yapmaz; başarı döndürür.
type NoopNotifier struct{}

func (n *NoopNotifier) Notify(context.Context, *models.Setting, Submission) (*NotifyResult, error) {
	return &NotifyResult{}, nil
}

var (
	_ Notifier = (*RedirectNotifier)(nil)
	_ Notifier = (*UltraMsgNotifier)(nil)
	_ Notifier = (*TwilioNotifier)(nil)
	_ Notifier = (*NoopNotifier)(nil)
)
