package sentiment

import "strings"

// DefaultLexiconVersion 内置词表版本，覆盖词表时需要自行指定
const DefaultLexiconVersion = "2025.1"

var defaultPositiveWords = []string{
	"happy", "good", "great", "amazing", "love", "wonderful", "excellent", "awesome", "fantastic",
	"beautiful", "inspiring", "motivational", "success", "win", "joy", "smile", "laugh", "fun",
	"celebrate", "achievement", "proud", "blessed", "grateful", "positive", "hope", "dream",
	"peace", "calm", "relax",
}

var defaultNegativeWords = []string{
	"sad", "bad", "hate", "terrible", "awful", "horrible", "depressed", "angry", "mad", "upset",
	"cry", "tears", "pain", "hurt", "broken", "lonely", "scared", "fear", "worry", "stress",
	"anxiety", "fail", "failure", "lose", "lost", "disappointed", "regret", "sorry", "mistake",
	"wrong", "problem", "issue", "trouble", "difficult", "hard", "struggle", "suffer", "sick",
	"tired", "exhausted",
}

var defaultToxicWords = []string{
	"kill", "die", "death", "murder", "suicide", "stupid", "idiot", "dumb", "moron", "fool",
	"loser", "ugly", "fat", "worthless", "useless", "pathetic", "disgusting", "gross", "nasty",
	"creepy", "weird", "freak", "psycho", "crazy", "insane", "retard", "gay", "lesbian", "homo",
	"fag", "slut", "whore", "bitch", "bastard", "damn", "hell", "shit", "fuck", "violence",
	"fight", "punch", "kick", "beat", "attack", "assault", "abuse", "bully", "threat",
	"dangerous", "weapon", "gun", "knife", "bomb", "terrorist", "war", "blood", "gore",
}

// "martial arts" 永远无法匹配单个 token，保留以与原词表一致
var defaultFightingWords = []string{
	"fight", "fighting", "combat", "battle", "war", "boxing", "mma", "ufc", "wrestling",
	"martial arts", "karate", "punch", "kick", "knockout", "ko", "submission", "takedown",
	"grappling", "sparring", "tournament", "championship", "versus", "vs", "opponent", "fighter",
	"warrior", "gladiator", "arena", "octagon", "ring", "match", "bout", "round",
}

// WordLists 词表原始配置
type WordLists struct {
	Version  string
	Positive []string
	Negative []string
	Toxic    []string
	Fighting []string
}

// Lexicon 加载后的只读词表
type Lexicon struct {
	version  string
	positive map[string]struct{}
	negative map[string]struct{}
	toxic    map[string]struct{}
	fighting map[string]struct{}
}

// DefaultLexicon 内置词表
func DefaultLexicon() *Lexicon {
	return NewLexicon(WordLists{})
}

// NewLexicon 为空的列表回退到内置词表
func NewLexicon(lists WordLists) *Lexicon {
	version := lists.Version
	if version == "" {
		version = DefaultLexiconVersion
	}
	return &Lexicon{
		version:  version,
		positive: toSet(lists.Positive, defaultPositiveWords),
		negative: toSet(lists.Negative, defaultNegativeWords),
		toxic:    toSet(lists.Toxic, defaultToxicWords),
		fighting: toSet(lists.Fighting, defaultFightingWords),
	}
}

func (l *Lexicon) Version() string {
	return l.version
}

func toSet(words []string, fallback []string) map[string]struct{} {
	if len(words) == 0 {
		words = fallback
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
