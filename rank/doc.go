// Package rank scores and orders detected sections against a persona
// context.
//
// Two independent scoring formulas are exposed, mirroring the two
// analysis pipelines that feed it. The persona-relevance score blends
// role-category keyword density with task keyword overlap; the final
// score combines a context-keyword TF-IDF measure with content-length
// and structural-position weights and is what ordering uses. Both are
// deterministic, clamped to [0,1], and safe on empty content.
//
// Ranking is stable: sections with equal final scores keep their
// pre-ranking relative order.
package rank
