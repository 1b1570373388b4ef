// Package watemplate randevu bildirimi mesaj şablonlarındaki
// {{name}}, {{phone}}, {{date}} ve {{message}} yer tutucularını doldurur.
package watemplate

import (
	"net/url"
	"strings"
)

// Mode yer tutucu değerlerinin nasıl yazılacağını belirler.
type Mode int

const (
	// ModeURL değerleri URL-encode ederek yerleştirir; şablon metnine dokunmaz.
	// WhatsApp deep link içine gömülecek metinler için kullanılır.
	ModeURL Mode = iota
	// ModeRaw değerleri olduğu gibi yerleştirir, ardından sonucun tamamını
	// URL-decode eder. API üzerinden düz metin gövde gönderen modlar için.
	ModeRaw
)

// Data şablona yerleştirilecek randevu alanları. Date ve Message opsiyoneldir,
// boş bırakıldıklarında yer tutucular boş string ile değiştirilir.
type Data struct {
	Name    string
	Phone   string
	Date    string
	Message string
}

// Render şablondaki her yer tutucunun tüm geçişlerini ilgili değerle değiştirir.
// Şablonda bulunmayan yer tutucular sonuca yansımaz. {{ ve }} için kaçış
// desteklenmez.
func Render(template string, data Data, mode Mode) string {
	pairs := []struct {
		placeholder string
		value       string
	}{
		{"{{name}}", data.Name},
		{"{{phone}}", data.Phone},
		{"{{date}}", data.Date},
		{"{{message}}", data.Message},
	}

	out := template
	for _, p := range pairs {
		value := p.value
		if mode == ModeURL {
			value = encodeComponent(value)
		}
		out = strings.ReplaceAll(out, p.placeholder, value)
	}

	if mode == ModeRaw {
		decoded, err := url.QueryUnescape(out)
		if err == nil {
			return decoded
		}
		// Decode edilemeyen şablon (örn. değerdeki tekil %) olduğu gibi kalır.
	}
	return out
}

// encodeComponent boşluğu %20 olarak yazar; url.QueryEscape'in form
// encoding'indeki '+' karşılığı WhatsApp linkinde boşluk olarak görünmez.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
