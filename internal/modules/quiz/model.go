// README: Quiz question bank, answers and per-user score.
package quiz

import "errors"

var (
	ErrNotFound          = errors.New("question not found")
	ErrBadRequest        = errors.New("bad request")
	ErrGeneratorDisabled = errors.New("question generator not configured")
	ErrGeneratorFailed   = errors.New("question generator failed")
)

type Question struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"-"`
}

// Result is returned after an answer is submitted.
type Result struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
	Score   int64  `json:"score"`
}

// Score is the per-user document in the quiz_scores collection.
type Score struct {
	Score int64 `firestore:"score" json:"score"`
}

// Bank is the built-in question set.
var Bank = []Question{
	{
		ID:       "1",
		Category: "Quran",
		Question: "Which Surah is the longest in the Quran?",
		Options:  []string{"Surah Baqarah", "Surah Ikhlas", "Surah Yaseen", "Surah Falaq"},
		Answer:   "Surah Baqarah",
	},
	{
		ID:       "2",
		Category: "Hadith",
		Question: "What does the Hadith say about intention (niyyah)?",
		Options:  []string{"It is not important", "Only actions matter", "Actions are judged by intentions", "None of these"},
		Answer:   "Actions are judged by intentions",
	},
	{
		ID:       "3",
		Category: "Dua",
		Question: "Which Dua is recited before sleeping?",
		Options:  []string{"Ayat-ul-Kursi", "Surah Fatiha", "Rabbi Zidni Ilma", "Bismika Allahumma amutu wa ahya"},
		Answer:   "Bismika Allahumma amutu wa ahya",
	},
	{
		ID:       "4",
		Category: "Quran",
		Question: "What is the first verse of the Quran?",
		Options:  []string{"Alhamdulillah", "Bismillah", "Iqra", "SubhanAllah"},
		Answer:   "Bismillah",
	},
	{
		ID:       "5",
		Category: "Quran",
		Question: "Which Surah has no Bismillah?",
		Options:  []string{"At-Tawbah", "Al-Fatiha", "Yasin", "Al-Ikhlas"},
		Answer:   "At-Tawbah",
	},
}
