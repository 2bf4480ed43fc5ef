// Package rules defines the highlight rule type and loads ordered rule
// lists from YAML configuration documents.
//
// A configuration document holds an optional ordered list of include
// references and an optional ordered list of rules. Resolution is
// depth-first: each document contributes its included rules first, then
// its own, and a document contributes at most once per load no matter how
// many include paths reach it. Rule order is significant downstream —
// the highlighting engine gives earlier rules priority.
package rules
