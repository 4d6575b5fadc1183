// Package message is the diagnostic message provider spec §6.3 calls for: a
// small registry mapping each required message key to a localized format
// string, injected into the scanner, bracket matcher, and reduction engine
// as a parameter rather than consulted through a process-wide singleton
// (spec §9's note on the sources' global message pointer).
//
// Catalog entries are rendered through golang.org/x/text/message, which is
// already a real (transitive) dependency of this module's sibling packages —
// this package gives it a direct, load-bearing role instead.
package message

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Key names one of the diagnostic messages spec §6.3 requires the core to
// be able to produce.
type Key string

const (
	NoInputFile             Key = "no_input_file"
	UnknownOption           Key = "unknown_option"
	MissingSpecification    Key = "missing_specification"
	DuplicateParameter      Key = "duplicate_parameter"
	UnknownSymbol           Key = "unknown_symbol"
	UnclosedQuotationMark   Key = "unclosed_quotation_mark"
	InvalidEscapeSequence   Key = "invalid_escape_sequence"
	UnclosedOpeningBracket  Key = "unclosed_opening_bracket"
	MissingOpeningBracket   Key = "missing_opening_bracket"
	BracketsDoNotMatch      Key = "brackets_do_not_match"
	NotAStatement           Key = "not_a_statement"
	ExpectedLvalue          Key = "expected_lvalue"
	ExpectedExpression      Key = "expected_expression"
	ExpectedCommaBetweenArgs Key = "expected_comma_between_args"
	ExpectedExprAfterComma  Key = "expected_expr_after_comma"
	InvalidFunctionArgument Key = "invalid_function_argument"
	CannotReadSourceFile    Key = "cannot_read_source_file"
	MemoryLeak              Key = "memory_leak"
	CompilationError        Key = "compilation_error"
)

// catalog is a per-language map from key to a message.Reference format
// string (fmt.Sprintf-style verbs, consumed through message.Printer.Sprintf).
type catalog map[Key]message.Reference

var english = catalog{
	NoInputFile:              message.String("no input file specified"),
	UnknownOption:            message.String("unknown option '%s'"),
	MissingSpecification:     message.String("missing language specification"),
	DuplicateParameter:       message.String("duplicate parameter '%s'"),
	UnknownSymbol:            message.String("unknown symbol '%s'"),
	UnclosedQuotationMark:    message.String("unmatched quote"),
	InvalidEscapeSequence:    message.String("invalid escape sequence '\\%s'"),
	UnclosedOpeningBracket:   message.String("unclosed opening bracket '%s'"),
	MissingOpeningBracket:    message.String("missing opening bracket corresponding to '%s'"),
	BracketsDoNotMatch:       message.String("closing bracket '%s' does not match '%s'"),
	NotAStatement:            message.String("token '%s' is not a statement allowed here"),
	ExpectedLvalue:           message.String("expected lvalue"),
	ExpectedExpression:       message.String("expected expression"),
	ExpectedCommaBetweenArgs: message.String("expected comma between arguments"),
	ExpectedExprAfterComma:   message.String("expected expression after comma"),
	InvalidFunctionArgument:  message.String("invalid function argument"),
	CannotReadSourceFile:     message.String("cannot read source file '%s': %s"),
	MemoryLeak:               message.String("memory leak: %d bytes still allocated"),
	CompilationError:         message.String("found %d compilation error(s)"),
}

// russian deliberately matches every key in english, per spec §6.3's
// requirement that the active language have a format string for each key.
var russian = catalog{
	NoInputFile:              message.String("не указан входной файл"),
	UnknownOption:            message.String("неизвестная опция '%s'"),
	MissingSpecification:     message.String("не указан язык спецификации"),
	DuplicateParameter:       message.String("повторяющийся параметр '%s'"),
	UnknownSymbol:            message.String("неизвестный символ '%s'"),
	UnclosedQuotationMark:    message.String("непарная кавычка"),
	InvalidEscapeSequence:    message.String("недопустимая escape-последовательность '\\%s'"),
	UnclosedOpeningBracket:   message.String("незакрытая открывающая скобка '%s'"),
	MissingOpeningBracket:    message.String("отсутствует открывающая скобка для '%s'"),
	BracketsDoNotMatch:       message.String("закрывающая скобка '%s' не соответствует '%s'"),
	NotAStatement:            message.String("токен '%s' не может быть оператором в этом месте"),
	ExpectedLvalue:           message.String("ожидается lvalue"),
	ExpectedExpression:       message.String("ожидается выражение"),
	ExpectedCommaBetweenArgs: message.String("ожидается запятая между аргументами"),
	ExpectedExprAfterComma:   message.String("ожидается выражение после запятой"),
	InvalidFunctionArgument:  message.String("недопустимый аргумент функции"),
	CannotReadSourceFile:     message.String("не удалось прочитать файл '%s': %s"),
	MemoryLeak:               message.String("утечка памяти: осталось выделено %d байт"),
	CompilationError:         message.String("найдено %d ошибок компиляции"),
}

var catalogs = map[language.Tag]catalog{
	language.English: english,
	language.Russian: russian,
}

// Provider formats diagnostic messages in one selected language. It is
// created once per invocation (by cmd/goatc, or by a test) and passed down
// as a parameter — never read from a package-level variable.
type Provider struct {
	tag     language.Tag
	cat     catalog
	printer *message.Printer
}

// New selects the catalog for tag, falling back to English if tag has no
// catalog of its own (spec §6.3: "English default, Russian selectable").
func New(tag language.Tag) *Provider {
	cat, ok := catalogs[tag]
	if !ok {
		tag = language.English
		cat = english
	}
	return &Provider{tag: tag, cat: cat, printer: message.NewPrinter(tag)}
}

// Format renders the message for key with args substituted, falling back to
// a raw "key[args]" rendering if key is unknown to this provider's catalog —
// that indicates a programmer error (a key used without a matching catalog
// entry), not a user-facing condition, so it is deliberately ugly.
func (p *Provider) Format(key Key, args ...interface{}) string {
	ref, ok := p.cat[key]
	if !ok {
		return fmt.Sprintf("%s%v", key, args)
	}
	return p.printer.Sprintf(ref, args...)
}

// Tag returns the language this provider renders in.
func (p *Provider) Tag() language.Tag {
	return p.tag
}
