package format

//go:generate go-enum --values --names --noprefix --flag --nocase

// Format is the output format of a rendered display model.
/* ENUM(
text, json, yaml
) */
type Format string
