package classifier

// DefaultConfidenceThreshold is the confidence below which the dialogue
// manager asks a clarifying question instead of committing to an intent.
// Tunable via config; this is the fallback.
const DefaultConfidenceThreshold = 0.5

// baseConfidence is the score a single unambiguous pattern match earns.
// Competing matches divide it.
const baseConfidence = 0.9

// questionConfidence is the score for the question-form KnowledgeQuery
// fallback, which is weaker evidence than an explicit trigger phrase.
const questionConfidence = 0.6
