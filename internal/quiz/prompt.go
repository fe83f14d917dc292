package quiz

import (
	"fmt"
	"strings"

	"github.com/oguzhan/hoca/internal/catalog"
)

// batchSystemPrompt teaches the batch wire format. The markers must stay in
// sync with internal/protocol.
const batchSystemPrompt = `Sen ilkokul ve ortaokul öğrencileri için sınav hazırlayan bir öğretmensin.
İstenilen sayıda çoktan seçmeli soru üret. Sorular Türkçe, kısa ve net olsun.

Her soru için birebir şu formatı kullan:
SORU: <soru metni>
A) <seçenek> B) <seçenek> C) <seçenek> D) <seçenek>
CEVAP: <doğru seçeneğin harfi>
YAKIN: <doğruya en yakın çeldiricinin harfi>

Kurallar:
- Sorular arasına tek başına bir satırda --- yaz.
- Her soruda tam dört seçenek olmalı.
- CEVAP ve YAKIN farklı harfler olmalı.
- Format dışında hiçbir şey yazma; açıklama, numara veya başlık ekleme.`

// buildBatchRequest asks for the round's item count, scoped to one subject
// or mixed across the whole catalog.
func buildBatchRequest(mode Mode, subject string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d soru üret.\n", mode.ItemCount())
	if subject != "" {
		fmt.Fprintf(&b, "Ders: %s\n", subject)
	} else {
		fmt.Fprintf(&b, "Dersler karışık olsun: %s\n", strings.Join(catalog.Names(), ", "))
	}
	b.WriteString("Zorluk karışık olsun; kolay sorularla başla.")
	return b.String()
}
