// Package otlpattr converts between OTLP attribute lists and the flat pairs
// understood by package attributes.
//
// Span attributes arrive as OTLP KeyValue lists, binary or OTLP/JSON, with
// flat keys such as "llm.input_messages.0.message.role". FromOTLP keeps
// values in their natural Go form so that Unflatten can rebuild the nested
// tree. ToOTLP goes the other way and types values the way the OpenTelemetry
// SDK does (see ToOTel).
package otlpattr
