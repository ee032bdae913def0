/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package id_test

import (
	"testing"

	"dirpx.dev/steamfx/steamcore/model/id"
)

func TestBitIterator_ByteWalk(t *testing.T) {
	it := id.NewBitIterator(76561197983318796, 8)

	want := []uint64{1, 16, 0, 1, 1, 95, 195, 12}
	for i, w := range want {
		got, ok := it.Next()
		if !ok {
			t.Fatalf("Next() step %d: exhausted early", i)
		}
		if got != w {
			t.Errorf("Next() step %d = %d, want %d", i, got, w)
		}
	}

	if got, ok := it.Next(); ok {
		t.Errorf("Next() after 8 steps = %d, true; want exhausted", got)
	}
}

func TestBitIterator_FieldWalk(t *testing.T) {
	it := id.NewBitIterator(76561197983318796, 8)

	universe, ok := it.Next()
	if !ok || universe != 1 {
		t.Fatalf("universe bits = %d, %v; want 1, true", universe, ok)
	}
	accountType, ok := id.NextAs[uint8](it, 4)
	if !ok || accountType != 1 {
		t.Fatalf("account type bits = %d, %v; want 1, true", accountType, ok)
	}
	instance, ok := id.NextAs[uint32](it, 20)
	if !ok || instance != 1 {
		t.Fatalf("instance bits = %d, %v; want 1, true", instance, ok)
	}
	acct, ok := id.NextAs[uint32](it, 31)
	if !ok || acct != 11526534 {
		t.Fatalf("account bits = %d, %v; want 11526534, true", acct, ok)
	}
	auth, ok := id.NextAs[uint8](it, 1)
	if !ok || auth != 0 {
		t.Fatalf("auth server bit = %d, %v; want 0, true", auth, ok)
	}

	if got := it.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestBitIterator_WholeWord(t *testing.T) {
	const value = 0xDEADBEEFCAFEF00D

	it := id.NewBitIterator(value, 64)
	got, ok := it.Next()
	if !ok || got != value {
		t.Fatalf("Next() = %#x, %v; want %#x, true", got, ok, uint64(value))
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after consuming all 64 bits succeeded, want exhausted")
	}
}

func TestBitIterator_SetWidth(t *testing.T) {
	it := id.NewBitIterator(76561197983318796, 8)

	// Consume 32 bits, leaving 32.
	for i := 0; i < 4; i++ {
		if _, ok := it.Next(); !ok {
			t.Fatalf("Next() step %d: exhausted early", i)
		}
	}

	if err := it.SetWidth(33); err == nil {
		t.Error("SetWidth(33) with 32 bits remaining succeeded, want error")
	}
	if err := it.SetWidth(32); err != nil {
		t.Errorf("SetWidth(32) with 32 bits remaining failed: %v", err)
	}
	got, ok := it.Next()
	if !ok || got != 23053068 {
		t.Errorf("Next() low word = %d, %v; want 23053068, true", got, ok)
	}
}

func TestBitIterator_WidthWiderThanRemaining(t *testing.T) {
	it := id.NewBitIterator(1, 48)

	if _, ok := it.Next(); !ok {
		t.Fatal("first Next() failed, want 48 bits")
	}
	// 16 bits remain, the width is still 48.
	if got, ok := it.Next(); ok {
		t.Errorf("Next() with width wider than remaining = %d, true; want exhausted", got)
	}
}

func TestNewBitIterator_PanicsOnOversizedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBitIterator(0, 65) did not panic")
		}
	}()
	id.NewBitIterator(0, 65)
}

func TestNextAs_FitCheck(t *testing.T) {
	// The top 16 bits of this value are 0xFFFF, which cannot fit uint8.
	it := id.NewBitIterator(0xFFFF000000000000, 16)

	if got, ok := id.NextAs[uint8](it, 16); ok {
		t.Errorf("NextAs[uint8] of 16 wide value = %d, true; want overflow failure", got)
	}
}
