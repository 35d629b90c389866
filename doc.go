// Package dfconfig reads, edits and writes Dwarf Fortress style init files
// such as init.txt and d_init.txt.
//
// A file is a sequence of lines. Entries are written as [KEY:VALUE] tokens;
// everything else (commentary, blank lines, text the classifier does not
// recognise) is kept verbatim, so a document that is parsed and written
// back without changes reproduces its input byte for byte. Edits touch only
// the entries they name.
//
// When a key occurs more than once, the game uses the last occurrence.
// Documents follow the same rule by default (see DefaultPolicy): Get, Set and
// Remove all act on the last matching entry.
//
//	doc, err := dfconfig.Parse(data)
//	if err != nil {
//		return err
//	}
//	sound, _ := doc.Get("SOUND")
//	doc.Set("VOLUME", "128")
//	out := doc.String()
//
// A Document is not safe for concurrent use.
package dfconfig
