package testutil

import (
	"time"

	"siaga/model"
)

// TestMessages returns a sample conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		{
			Role:      model.RoleSystem,
			Content:   "Kamu adalah Disaster Preparedness Assistant.",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleUser,
			Content:   "air mulai naik di rumah",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleAssistant,
			Content:   "Air sudah masuk rumah? Lantai berapa?",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleUser,
			Content:   "sudah semata kaki, lantai 1, listrik masih nyala",
			Timestamp: time.Now(),
		},
	}
}

// SingleUserMessage returns a single user message for simple tests
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{
			Role:      model.RoleUser,
			Content:   content,
			Timestamp: time.Now(),
		},
	}
}

// StaticCredentials is an in-memory credential set keyed by provider ID.
type StaticCredentials map[string]string

func (c StaticCredentials) Get(providerID string) string {
	return c[providerID]
}

func (c StaticCredentials) EnvName(providerID string) string {
	switch providerID {
	case "gemini":
		return "GOOGLE_API_KEY"
	case "groq":
		return "GROQ_API_KEY"
	default:
		return providerID
	}
}

// NowActionReply is a well-formed Now Action reply with all five sections in
// canonical order.
const NowActionReply = `Ringkasan situasi:
Air semata kaki di lantai 1, listrik masih menyala.

✅ Langkah 0–10 menit (1–5):
1. Matikan MCB dari titik kering.
2. Naikkan dokumen ke lantai atas.

📣 Pesan cepat (Keluarga + RT/Posko):
Air masuk rumah semata kaki, kami aman di rumah.

🔁 Jika... maka... (triggers):
- Jika air sampai lutut, maka pindah ke lantai 2.

⚠️ Peringatan singkat (maks 3):
- Jangan sentuh stop kontak yang basah.`

// PreparednessReply is a well-formed Preparedness Plan reply.
const PreparednessReply = `🎒 Go Bag checklist:
- Air minum 3 liter
- Senter

🏠 Home prep checklist:
- Ikat lemari ke dinding

🗺️ Rencana evakuasi:
- Titik kumpul: lapangan RW

📅 Rencana 7 hari:
- Hari 1: siapkan tas`
