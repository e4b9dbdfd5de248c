// Package tasks orchestrates the recommendation pipeline.
//
// [Engine] owns the mood-to-recommendation flow: it validates input, searches
// for playlist candidates, selects the best one via the ranker (falling back
// to the first candidate), and fetches the selected playlist's top tracks.
//
// [Recommender] is the capability-polymorphic entry point used by the CLI. An
// external LLM orchestrator can be plugged in through the [Reasoner]
// interface; when none is configured, or when the reasoner fails, the direct
// engine path serves the request. Both implementations are explicit,
// constructed dependencies — there is no package-level singleton.
package tasks
