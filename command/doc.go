// Package command defines the primitive RTF commands consumed by the
// interpreter and decodes command streams stored as JSON.
//
// A tokenizer turns RTF bytes into a flat sequence of [Command] values:
// group boundaries, control words with optional parameters, literal text,
// hex-escaped bytes, the \* ignorable marker, paragraph ends and errors.
// Commands carry no nesting; the interpreter rebuilds structure from them.
//
// # Construction
//
//	cmds := []command.Command{
//	    command.GroupStart(),
//	    command.Word("rtf", 1),
//	    command.Word("b"),
//	    command.Text("Hello"),
//	    command.GroupEnd(),
//	}
//
// # Stored Streams
//
// [Parser] reads commands encoded either as a JSON array or as JSON lines,
// one object per command:
//
//	{"type":"controlWord","name":"fs","param":28}
//	{"type":"text","value":"Hello"}
//	{"type":"hexByte","value":233}
package command
