// Package reader turns source files into the normalized line model the
// analysis pipeline consumes.
//
// Each adapter implements the [Reader] interface for one format. The
// PDF adapter maps positioned text runs to lines with real font and
// position metadata; the Markdown, HTML, and DOCX adapters lay their
// structural elements out on synthetic pages, assigning heading sizes
// and bold flags so the same layout heuristics apply.
//
// [Open] picks the adapter from the file extension:
//
//	r, err := reader.Open("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	doc, err := r.Read()
//
// All adapters apply the same normalization: span text is NFKC
// normalized and trimmed, separator runs and sub-2-character spans are
// dropped, and lines with under 3 characters or under 2 alphanumerics
// are discarded.
package reader
