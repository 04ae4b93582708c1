/*
 * Copyright (C) 2026, Steve Pryde
 *
 * This file is part of stringmatch.
 *
 * stringmatch is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * stringmatch is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package stringmatch

// Shortcuts that promote a plain string into a configured StringMatch.
// Pure sugar over New plus one builder call.

// MatchFull returns a full, case-sensitive matcher for text.
func MatchFull(text string) StringMatch { return New(text).Full() }

// MatchPartial returns a substring matcher for text.
func MatchPartial(text string) StringMatch { return New(text).Partial() }

// MatchWord returns a whole-word matcher for text.
func MatchWord(text string) StringMatch { return New(text).Word() }

// MatchCaseSensitive returns a case-sensitive matcher for text.
func MatchCaseSensitive(text string) StringMatch { return New(text).CaseSensitive() }

// MatchCaseInsensitive returns a case-insensitive matcher for text.
func MatchCaseInsensitive(text string) StringMatch { return New(text).CaseInsensitive() }
