package entity

// Vocabulary is a named collection of words and phrases.
type Vocabulary struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	WordCount int64  `db:"word_count"`
}
