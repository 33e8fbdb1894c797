// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scoring holds the pure domain rules of participant progress:
// the risk classification derived from the initial questionnaire, the
// experience status shown in administrative reports and the medal merge
// applied before medals are written to the progress service.
//
// Functions in this package perform no I/O and are safe for concurrent use.
package scoring
