// Package interpreter builds a model.Document from a stream of RTF commands.
//
// The interpreter keeps a stack of open groups. Each group carries the
// style in effect inside it, the encoding declared for it and the content
// collected so far. When a group closes, its content moves to the group
// that becomes current. A group whose first control word marked it as a
// destination (\fonttbl, \colortbl, or any group flagged with \* or a known
// ignorable destination such as \info) is handled differently: font and
// color tables are harvested into the document, and ignorable content is
// dropped.
//
// The \rtf control word marks the document group. Content reaching it is
// grouped into paragraphs at every paragraph boundary, and each paragraph's
// style is hoisted from its spans as soon as it is complete.
//
// # Basic Usage
//
//	doc, warnings, err := interpreter.Interpret(cmds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range warnings {
//	    log.Println(w)
//	}
//	fmt.Print(doc.ExtractText())
//
// # Incremental Use
//
// Commands can also be pushed one at a time, for example while reading a
// stored stream:
//
//	in := interpreter.New(interpreter.WithLogger(logger))
//	for _, cmd := range cmds {
//	    if err := in.Process(cmd); err != nil {
//	        return err
//	    }
//	}
//	doc, err := in.Finish()
//
// Finish repairs unbalanced input by closing every group still open, and
// turns text after the last paragraph boundary into a final paragraph.
//
// # Errors and Warnings
//
// Unknown control words, unknown charsets, undecodable bytes and tokenizer
// errors are recorded as [Warning] values and interpretation continues.
// The only fatal error is [ErrColorTableContent]: literal text other than
// ";" inside a color table.
package interpreter
