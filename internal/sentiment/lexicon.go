package sentiment

// Valences are on a -4..+4 scale (mean human rating of the word), general
// English plus market and retail-investor slang.
var baseLexicon = map[string]float64{
	// favorable
	"good": 1.9, "great": 3.1, "excellent": 3.2, "amazing": 2.8, "awesome": 3.1,
	"fantastic": 2.6, "love": 3.2, "loving": 2.9, "like": 1.5, "nice": 1.8,
	"best": 3.2, "better": 1.9, "happy": 2.7, "glad": 2.0, "win": 2.8,
	"winning": 2.4, "winner": 2.8, "wins": 2.7, "won": 2.7, "strong": 2.3,
	"stronger": 2.1, "strongest": 2.3, "solid": 1.7, "robust": 1.5, "impressive": 2.3,
	"beat": 1.4, "beats": 1.4, "exceeded": 1.8, "record": 1.3, "success": 2.7,
	"successful": 2.8, "profit": 1.9, "profitable": 1.9, "profits": 1.9, "gain": 2.4,
	"gains": 1.8, "gained": 1.6, "growth": 1.6, "grow": 1.3, "growing": 1.3,
	"improve": 1.9, "improved": 2.1, "improving": 1.8, "rally": 1.6, "rallying": 1.6,
	"surge": 1.8, "surging": 1.9, "soar": 2.5, "soaring": 2.5, "soared": 2.4,
	"boom": 1.8, "booming": 2.1, "bullish": 2.3, "bull": 1.2, "upside": 1.6,
	"upgrade": 1.6, "upgraded": 1.6, "outperform": 1.9, "outperformed": 1.9, "optimistic": 2.2,
	"optimism": 2.1, "confident": 2.2, "confidence": 2.1, "promising": 2.0, "opportunity": 1.8,
	"undervalued": 1.2, "breakthrough": 2.2, "innovative": 1.9, "innovation": 1.6, "recover": 1.8,
	"recovery": 1.6, "recovering": 1.6, "rebound": 1.5, "moon": 2.0, "mooning": 2.3,
	"rocket": 1.5, "tendies": 1.8, "lambo": 1.5, "hodl": 1.0, "diamond": 1.2,
	"buy": 0.9, "buying": 0.8, "long": 0.3, "calls": 0.5, "green": 1.2,
	"yay": 2.4, "wow": 2.8, "exciting": 2.2, "excited": 2.2, "thrilled": 2.9,
	"beautiful": 2.9, "brilliant": 2.8, "perfect": 2.7, "incredible": 2.5, "superb": 3.1,
	"outstanding": 3.0, "favorable": 2.1, "positive": 2.6, "benefit": 2.0, "benefits": 1.8,
	"reward": 2.1, "rewarding": 2.4, "safe": 1.9, "stable": 1.2, "secure": 1.4,
	"thanks": 1.9, "thank": 1.5, "fun": 2.3, "cool": 1.3, "smart": 1.7,
	"wise": 1.8, "lucky": 1.7, "fortune": 1.6, "rich": 1.9, "wealthy": 1.8,
	"healthy": 1.7, "top": 0.8, "leader": 1.4, "leading": 1.2, "dominant": 1.1,
	"agree": 1.5, "support": 1.7, "supportive": 1.9, "trust": 2.3, "fair": 1.3,
	"hope": 1.9, "hopeful": 2.0, "relief": 2.1, "celebrate": 2.7, "party": 1.7,
	"lol": 1.8, "lmao": 2.0, "haha": 2.0,

	// unfavorable
	"bad": -2.5, "terrible": -2.1, "awful": -2.0, "horrible": -2.5, "worst": -3.1,
	"worse": -2.1, "poor": -2.1, "weak": -1.9, "weaker": -1.9, "weakness": -1.6,
	"hate": -2.7, "hated": -3.2, "sad": -2.1, "angry": -2.3, "fear": -2.2,
	"fears": -1.8, "afraid": -2.2, "scared": -1.9, "panic": -2.3, "panicking": -2.2,
	"worried": -1.8, "worry": -1.9, "worrying": -1.4, "concern": -0.9, "concerns": -1.2,
	"concerned": -1.3, "risk": -1.1, "risky": -1.4, "disaster": -3.1, "disastrous": -2.9,
	"crisis": -3.1, "crash": -1.7, "crashed": -2.0, "crashing": -2.0, "collapse": -2.2,
	"collapsed": -2.3, "plunge": -1.9, "plunged": -1.9, "plunging": -1.9, "tank": -1.1,
	"tanked": -1.9, "tanking": -1.9, "dump": -1.6, "dumped": -1.7, "dumping": -1.6,
	"drop": -1.1, "dropped": -1.2, "dropping": -1.1, "fall": -1.1, "falling": -1.4,
	"fell": -1.3, "decline": -1.5, "declined": -1.5, "declining": -1.6, "slump": -1.8,
	"loss": -1.3, "losses": -1.7, "lose": -1.7, "losing": -1.6, "lost": -1.3,
	"miss": -0.6, "missed": -1.2, "misses": -1.1, "fail": -2.5, "failed": -2.3,
	"failing": -2.3, "failure": -2.3, "bankrupt": -2.6, "bankruptcy": -2.7, "debt": -1.5,
	"bearish": -2.0, "bear": -1.0, "downgrade": -1.6, "downgraded": -1.7, "overvalued": -1.2,
	"bubble": -1.2, "fraud": -2.8, "scam": -2.8, "lawsuit": -1.5, "sued": -1.6,
	"investigation": -1.0, "recall": -1.1, "layoffs": -2.0, "layoff": -2.0, "fired": -2.6,
	"recession": -2.3, "inflation": -1.1, "volatile": -1.1, "volatility": -0.9, "uncertain": -1.2,
	"uncertainty": -1.4, "problem": -1.7, "problems": -1.7, "trouble": -1.7, "troubled": -2.0,
	"disappointing": -2.2, "disappointed": -1.9, "disappointment": -2.3, "ugly": -2.3, "stupid": -2.4,
	"dumb": -2.3, "idiot": -2.3, "pathetic": -2.7, "garbage": -2.1, "trash": -1.9,
	"sucks": -1.5, "suck": -1.9, "broke": -1.8, "rekt": -2.0, "bagholder": -1.6,
	"bagholders": -1.6, "puts": -0.4, "sell": -0.5, "selling": -0.6, "selloff": -1.8,
	"short": -0.4, "red": -0.8, "bleeding": -2.0, "blood": -1.1, "pain": -2.3,
	"painful": -2.4, "hurt": -2.4, "hurts": -2.1, "damage": -2.2, "damaged": -1.9,
	"danger": -2.4, "dangerous": -2.1, "threat": -2.4, "warning": -1.4, "negative": -2.7,
	"unfavorable": -2.1, "wrong": -2.1, "mistake": -1.7, "regret": -2.0, "ruined": -2.4,
	"killed": -3.5, "kill": -3.7, "dead": -3.3, "dying": -2.9, "doom": -1.7,
	"doomed": -3.2, "shit": -2.6, "crap": -1.6, "wtf": -2.8, "sadly": -1.8,
	"unfortunately": -1.7, "ugh": -1.8, "meh": -0.3, "annoying": -1.7, "sick": -2.3,
	"cheat": -2.0, "cheated": -2.7, "lie": -1.6, "lies": -1.8, "lying": -2.4,
	"manipulation": -1.4, "manipulated": -1.6, "delay": -1.3, "delayed": -0.9, "shortage": -1.3,
	"cut": -1.1, "cuts": -1.2, "slow": -0.9, "slowing": -1.0, "stagnant": -1.2,
}

// negations flip the valence of a following sentiment word
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "none": true, "nobody": true,
	"nothing": true, "nowhere": true, "neither": true, "nor": true, "without": true,
	"cannot": true, "cant": true, "dont": true, "doesnt": true, "didnt": true,
	"isnt": true, "arent": true, "wasnt": true, "werent": true, "wont": true,
	"wouldnt": true, "shouldnt": true, "couldnt": true, "hasnt": true, "havent": true,
	"hadnt": true, "aint": true, "rarely": true, "seldom": true, "despite": true,
}

const (
	boostIncr = 0.293
	boostDecr = -0.293
)

// boosters scale the next sentiment word up (intensifiers) or down (hedges)
var boosters = map[string]float64{
	"absolutely": boostIncr, "amazingly": boostIncr, "completely": boostIncr, "considerably": boostIncr,
	"deeply": boostIncr, "effing": boostIncr, "enormously": boostIncr, "entirely": boostIncr,
	"especially": boostIncr, "exceptionally": boostIncr, "extremely": boostIncr, "fully": boostIncr,
	"greatly": boostIncr, "highly": boostIncr, "hugely": boostIncr, "incredibly": boostIncr,
	"insanely": boostIncr, "intensely": boostIncr, "majorly": boostIncr, "massively": boostIncr,
	"more": boostIncr, "most": boostIncr, "particularly": boostIncr, "purely": boostIncr,
	"quite": boostIncr, "really": boostIncr, "remarkably": boostIncr, "so": boostIncr,
	"substantially": boostIncr, "super": boostIncr, "thoroughly": boostIncr, "totally": boostIncr,
	"tremendously": boostIncr, "truly": boostIncr, "unbelievably": boostIncr, "very": boostIncr,
	"wildly": boostIncr, "hella": boostIncr, "mega": boostIncr, "ultra": boostIncr,

	"almost": boostDecr, "barely": boostDecr, "hardly": boostDecr, "kinda": boostDecr,
	"less": boostDecr, "little": boostDecr, "marginally": boostDecr, "occasionally": boostDecr,
	"partly": boostDecr, "scarcely": boostDecr, "slightly": boostDecr, "somewhat": boostDecr,
	"sorta": boostDecr, "sort": boostDecr, "kind": boostDecr,
}
