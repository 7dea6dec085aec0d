package dailycontent

type ContentType string

const (
	TypeVerse      ContentType = "verse"
	TypeHadith     ContentType = "hadith"
	TypeDua        ContentType = "dua"
	TypeReflection ContentType = "reflection"
)

// Content is a dated motivational entry shown on the home page. Date uses the
// 2006-01-02 layout; entries without a matching date fall back to random.
type Content struct {
	ID     int         `json:"id"`
	Type   ContentType `json:"type"`
	Date   string      `json:"date"`
	Title  string      `json:"title"`
	Body   string      `json:"body"`
	Source string      `json:"source,omitempty"`
}
