// Package fundora provides the computation core of the fundora investment
// assistant. Classification, allocation and projection are pure and
// deterministic: they work over small immutable tables and do no I/O. The
// user record and the transcript go through the KV interface.
//
// The core functionalities include:
//   - Persona Classification: converting the answers of the onboarding quiz
//     into a named investor persona (see Quiz and WeightedQuiz).
//   - Asset Allocation: splitting a principal across six asset categories
//     according to the persona's row in the allocation matrix (see Engine).
//   - Growth Projection: compounding each category at its own annual rate
//     over a number of years, and summarizing the result as a CAGR.
//   - Product Catalog: example products and learning links per category.
//   - Amount Parsing: extracting an amount from free text such as "5 lakh".
//   - User State: the signed-in user, their persona and the assistant
//     transcript, kept in a KV.
//
// The surrounding application (the `fundora` command, the HTTP API, the user
// store and the advice collaborators) lives in sub packages and only ever
// consumes this package.
package fundora
