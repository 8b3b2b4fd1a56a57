package handlers

// htmlHandler and cssHandler need no overrides: htmlQuery/cssQuery always
// produce a usable symbol.name capture (a tag_name or a selectors node), and
// neither language has a complex-symbol or cross-file import concept in this
// registry's query set, so the defaults (name-from-capture-text, no
// resolution) already match spec.md §4.4's coverage of these two languages.
var htmlHandler = Handler{}

var cssHandler = Handler{}
