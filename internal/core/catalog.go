package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for the user-facing text
const (
	keyInvalidInput  = "input.invalid"
	keyNumberMissing = "input.missing"
	keyEntryNotFound = "history.not_found"

	keyLabelHigh   = "label.high"
	keyLabelMedium = "label.medium"
	keyLabelLow    = "label.low"

	keyHistoryHigh   = "history.high"
	keyHistoryMedium = "history.medium"
	keyHistoryLow    = "history.low"

	keyProviderTitle   = "detail.provider.title"
	keyProviderContent = "detail.provider.content"

	keyReportsTitle   = "detail.reports.title"
	keyReportsHigh    = "detail.reports.high"
	keyReportsDefault = "detail.reports.default"

	keyActivityTitle   = "detail.activity.title"
	keyActivityActive  = "detail.activity.active"
	keyActivityLimited = "detail.activity.limited"

	keyRecommendationTitle   = "detail.recommendation.title"
	keyRecommendationHigh    = "detail.recommendation.high"
	keyRecommendationDefault = "detail.recommendation.default"

	keyRiskSafe    = "risk.safe"
	keyRiskAlert   = "risk.alert"
	keyRiskNormal  = "risk.normal"
	keyRiskCareful = "risk.careful"

	keySeedYesterday = "seed.yesterday"
	keySeedTwoDays   = "seed.two_days"

	keyWarningTitle   = "warning.title"
	keyWarningMessage = "warning.message"
	keyWarningRec1    = "warning.rec1"
	keyWarningRec2    = "warning.rec2"
	keyWarningRec3    = "warning.rec3"
	keyWarningRec4    = "warning.rec4"

	keyShareTitle  = "share.title"
	keyShareText   = "share.text"
	keySharePrompt = "share.prompt"

	keyReportTitle   = "report.title"
	keyReportMessage = "report.message"
	keyReportNote    = "report.note"
	keyReportAction  = "report.action"
)

// Locale is the only locale the text catalog carries
var Locale = language.Indonesian

var indonesian = map[string]string{
	keyInvalidInput:  "Nomor telepon tidak valid. Masukkan 10-13 digit angka.",
	keyNumberMissing: "Masukkan nomor terlebih dahulu.",
	keyEntryNotFound: "Riwayat pengecekan tidak ditemukan.",

	keyLabelHigh:   "TINGGI",
	keyLabelMedium: "SEDANG",
	keyLabelLow:    "RENDAH",

	keyHistoryHigh:   "Tinggi",
	keyHistoryMedium: "Sedang",
	keyHistoryLow:    "Rendah",

	keyProviderTitle:   "Provider & Format",
	keyProviderContent: "Nomor valid. Terdeteksi menggunakan layanan seluler utama Indonesia.",

	keyReportsTitle:   "Laporan Komunitas",
	keyReportsHigh:    "Terdapat beberapa laporan dari pengguna tentang nomor ini dalam 3 bulan terakhir.",
	keyReportsDefault: "Tidak ada laporan penipuan dari komunitas sejauh ini.",

	keyActivityTitle:   "Aktivitas Online",
	keyActivityActive:  "Aktif di beberapa platform marketplace dan media sosial.",
	keyActivityLimited: "Aktivitas online terbatas. Kemungkinan nomor pribadi.",

	keyRecommendationTitle:   "Rekomendasi",
	keyRecommendationHigh:    "Disarankan untuk tidak merespons atau menghubungi kembali. Laporkan jika menerima pesan mencurigakan.",
	keyRecommendationDefault: "Bisa dihubungi dengan normal. Tetap jaga kerahasiaan data pribadi.",

	keyRiskSafe:    "AMAN",
	keyRiskAlert:   "WASPADA",
	keyRiskNormal:  "NORMAL",
	keyRiskCareful: "HATI-HATI",

	keySeedYesterday: "Kemarin",
	keySeedTwoDays:   "2 hari lalu",

	keyWarningTitle:   "Peringatan",
	keyWarningMessage: "Nomor %s memiliki risiko %s.",
	keyWarningRec1:    "Jangan berikan informasi pribadi apapun",
	keyWarningRec2:    "Jangan mengklik link dari nomor ini",
	keyWarningRec3:    "Blokir jika menerima pesan mencurigakan",
	keyWarningRec4:    "Laporkan ke WhatsApp jika perlu",

	keyShareTitle:  "Hasil Cek Nomor",
	keyShareText:   "Saya baru mengecek nomor %s di CekNomor.id",
	keySharePrompt: "Salin link ini untuk berbagi hasil pengecekan:",

	keyReportTitle:   "Laporkan Nomor",
	keyReportMessage: "Apakah Anda yakin ingin melaporkan nomor %s?",
	keyReportNote:    "Laporan Anda akan membantu komunitas untuk lebih waspada.",
	keyReportAction:  "Laporkan",
}

var printer *message.Printer

func init() {
	for key, text := range indonesian {
		if err := message.SetString(Locale, key, text); err != nil {
			panic(err)
		}
	}
	printer = message.NewPrinter(Locale)
}

// msg renders a catalog entry
func msg(key string, args ...interface{}) string {
	return printer.Sprintf(key, args...)
}

// Label returns the upper-case label used on a result
func (r RiskLevel) Label() string {
	switch r {
	case RiskHigh:
		return msg(keyLabelHigh)
	case RiskMedium:
		return msg(keyLabelMedium)
	default:
		return msg(keyLabelLow)
	}
}

// HistoryLabel returns the label used in the history list
func (r RiskLevel) HistoryLabel() string {
	switch r {
	case RiskHigh:
		return msg(keyHistoryHigh)
	case RiskMedium:
		return msg(keyHistoryMedium)
	case RiskLow:
		return msg(keyHistoryLow)
	default:
		return "Unknown"
	}
}
