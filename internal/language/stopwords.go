package language

func stopwordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var englishStopwords = stopwordSet([]string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
	"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
	"be", "been", "being", "it", "its", "it's", "this", "that", "these",
	"those", "from", "up", "down", "over", "under", "again", "further",
	"than", "so", "such", "into", "about", "between", "through", "during",
	"before", "after", "above", "below", "out", "off", "own", "same", "too",
	"very", "can", "will", "just", "don", "don't", "should", "now", "i",
	"me", "my", "we", "our", "you", "your", "he", "him", "his", "she",
	"her", "they", "them", "their", "what", "which", "who", "whom", "am",
	"have", "has", "had", "do", "does", "did", "not", "no", "nor", "only",
	"there", "here", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "because", "while",
	"once", "against",
})

var spanishStopwords = stopwordSet([]string{
	"un", "una", "unas", "unos", "el", "la", "los", "las", "lo", "y", "o",
	"pero", "si", "no", "ni", "de", "del", "a", "al", "en", "con", "por",
	"para", "sin", "sobre", "entre", "hasta", "desde", "durante", "como",
	"que", "qué", "quien", "quién", "cual", "cuál", "cuando", "cuándo",
	"donde", "dónde", "es", "son", "era", "eran", "fue", "fueron", "ser",
	"está", "están", "estaba", "estaban", "estar", "hay", "ha", "han",
	"había", "ya", "más", "menos", "muy", "mucho", "poco", "todo", "toda",
	"todos", "todas", "otro", "otra", "otros", "otras", "este", "esta",
	"estos", "estas", "ese", "esa", "esos", "esas", "su", "sus", "mi",
	"mis", "tu", "tus", "nos", "les", "se", "le", "me", "te", "yo", "él",
	"ella", "ellos", "ellas", "nosotros", "vosotros", "ustedes", "también",
	"porque", "mientras", "antes", "después", "ahora", "aquí", "allí",
})
