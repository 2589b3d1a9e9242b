/*
Package ruleops provides the typed operator catalog at the core of a
rule-evaluation engine for tabular clinical data.

A rule is expressed elsewhere (rule parsing, scheduling, persistence and
authoring UI plumbing are all out of scope for this package) as a triple
of (value type, operator name, arguments). This package supplies the
values those operators run against and the operators themselves:

  - Scalar value types — StringValue, NumericValue, BooleanValue,
    SelectValue, SelectMultipleValue and the dispatching GenericValue —
    each exposing a fixed set of comparison operators.
  - DataframeBundle, a columnar table paired with the reference
    metadata (column-prefix rewriting, relationship data, value-level
    metadata, codelists) its operators consult. See the dataframe
    subpackage.
  - A registry that enumerates every operator's pretty label and
    expected input widget kind, so a rule-authoring UI can render a
    form without knowing the operator catalog ahead of time.

Values are coerced once at construction and are immutable thereafter.
Dataframe operators are pure functions of their inputs with one
documented exception (see the dataframe package's EmptyWithinExceptLastRow
/ NonEmptyWithinExceptLastRow), and return either a boolean scalar or a
per-row boolean column.
*/
package ruleops
