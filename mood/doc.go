// SPDX-License-Identifier: EPL-2.0

// Package mood maps a features.FeatureSet onto one of five mood labels.
//
// Every feature votes through fixed threshold bands (lower bounds inclusive)
// into a ScoreTable. Sad, happy and neutral bands are worth up to three
// points while angry never earns more than one per feature, so angry needs
// most features in their extreme bands to win.
//
// Decide resolves the table in this order:
//
//  1. if sad+angry exceeds the top single score, the result is sad;
//  2. a single top scorer wins;
//  3. a tie that includes both sad and angry resolves to sad;
//  4. otherwise the first tied label in Labels() order wins.
//
// The rule 4 order (angry, sad, happy, surprised, neutral) is a fixed
// priority list, not a ranking of the moods.
package mood
