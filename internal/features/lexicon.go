package features

// Valence lexicon in the style of the reference rule-based model:
// signed strengths on a roughly [-4, 4] scale, general sentiment terms
// plus the vocabulary that dominates market and sector discussion.

func loadValenceLexicon() map[string]float64 {
	return map[string]float64{
		// General positive.
		"amazing": 2.8, "awesome": 3.1, "beautiful": 2.9, "best": 3.2,
		"better": 1.9, "bullish": 2.4, "confident": 2.2, "easy": 1.9,
		"excellent": 2.7, "excited": 2.4, "fantastic": 2.6, "favorite": 2.0,
		"gain": 2.4, "gains": 2.4, "glad": 2.0, "good": 1.9, "great": 3.1,
		"happy": 2.7, "hope": 1.9, "huge": 1.6, "impressive": 2.3,
		"improve": 1.9, "improved": 2.1, "improvement": 2.0, "incredible": 2.8,
		"interesting": 1.7, "like": 1.5, "love": 3.2, "nice": 1.8,
		"opportunity": 1.7, "optimistic": 2.2, "outperform": 2.1,
		"perfect": 2.7, "positive": 2.3, "profit": 2.3, "profitable": 2.5,
		"progress": 1.8, "promising": 2.1, "rally": 1.9, "record": 1.5,
		"recovery": 1.8, "reward": 2.1, "rich": 2.0, "robust": 2.0,
		"solid": 1.8, "strength": 2.0, "strong": 2.3, "succeed": 2.4,
		"success": 2.7, "successful": 2.7, "super": 2.9, "surge": 1.9,
		"thoughtful": 1.8, "undervalued": 1.6, "upside": 1.9, "valuable": 2.1,
		"win": 2.8, "winner": 2.8, "winning": 2.8, "wonderful": 2.7,
		"worth": 1.5, "yes": 1.7,

		// General negative.
		"awful": -2.9, "bad": -2.5, "bankrupt": -3.2, "bankruptcy": -3.1,
		"bear": -1.2, "bearish": -2.4, "collapse": -2.7, "concern": -1.4,
		"concerned": -1.6, "crash": -2.8, "crisis": -3.1, "damage": -2.2,
		"debt": -1.5, "decline": -1.9, "depressed": -2.6, "disappointing": -2.4,
		"disaster": -3.1, "doubt": -1.5, "down": -1.2, "downside": -1.8,
		"downturn": -2.0, "drop": -1.5, "dump": -1.9, "fail": -2.5,
		"failure": -2.6, "fear": -2.2, "fraud": -3.2, "hate": -2.7,
		"horrible": -2.9, "hurt": -2.1, "lose": -2.2, "loser": -2.5,
		"loss": -2.3, "losses": -2.3, "lost": -2.1, "miss": -1.4,
		"missed": -1.6, "negative": -2.3, "no": -1.2, "overvalued": -1.6,
		"panic": -2.6, "plunge": -2.3, "poor": -2.1, "problem": -1.7,
		"recession": -2.6, "risk": -1.1, "risky": -1.6, "scam": -3.0,
		"sad": -2.1, "sell": -0.8, "selloff": -2.0, "short": -0.6,
		"slump": -2.0, "terrible": -3.1, "trouble": -1.9, "ugly": -2.3,
		"uncertain": -1.4, "uncertainty": -1.4, "volatile": -1.3,
		"warning": -1.6, "weak": -1.9, "weakness": -2.0, "worried": -2.0,
		"worry": -1.9, "worse": -2.4, "worst": -3.1, "wrong": -2.1,
	}
}

// loadBoosterWords returns intensity modifiers; positive values
// intensify, negative values dampen.
func loadBoosterWords() map[string]float64 {
	return map[string]float64{
		"absolutely": boosterIncr, "completely": boosterIncr,
		"considerably": boosterIncr, "decidedly": boosterIncr,
		"deeply": boosterIncr, "enormously": boosterIncr,
		"especially": boosterIncr, "exceptionally": boosterIncr,
		"extremely": boosterIncr, "greatly": boosterIncr,
		"highly": boosterIncr, "hugely": boosterIncr,
		"incredibly": boosterIncr, "massively": boosterIncr,
		"really": boosterIncr, "remarkably": boosterIncr,
		"so": boosterIncr, "substantially": boosterIncr,
		"totally": boosterIncr, "tremendously": boosterIncr,
		"unbelievably": boosterIncr, "unusually": boosterIncr,
		"very": boosterIncr,

		"almost": -boosterIncr, "barely": -boosterIncr,
		"hardly": -boosterIncr, "kind of": -boosterIncr,
		"kinda": -boosterIncr, "less": -boosterIncr,
		"little": -boosterIncr, "marginally": -boosterIncr,
		"occasionally": -boosterIncr, "partly": -boosterIncr,
		"scarcely": -boosterIncr, "slightly": -boosterIncr,
		"somewhat": -boosterIncr, "sort of": -boosterIncr,
		"sorta": -boosterIncr,
	}
}

func loadNegationWords() map[string]bool {
	words := []string{
		"ain't", "aint", "aren't", "arent", "can't", "cannot", "cant",
		"couldn't", "couldnt", "didn't", "didnt", "doesn't", "doesnt",
		"don't", "dont", "hasn't", "hasnt", "haven't", "havent",
		"isn't", "isnt", "neither", "never", "no", "nobody", "none",
		"nope", "nor", "not", "nothing", "nowhere", "shouldn't",
		"shouldnt", "wasn't", "wasnt", "without", "won't", "wont",
		"wouldn't", "wouldnt", "rarely", "seldom", "despite",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
