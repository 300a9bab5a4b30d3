package service

import (
	"testing"
	"time"
)

func TestEncodeDateCode(t *testing.T) {
	code, err := EncodeDateCode(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("인코딩 실패: %v", err)
	}
	if code != 240110 {
		t.Errorf("240110을 기대했으나 %d", code)
	}
}

func TestEncodeDateCode_OutOfCentury(t *testing.T) {
	if _, err := EncodeDateCode(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("2000년 이전 날짜는 오류여야 한다")
	}
	if _, err := EncodeDateCode(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("2100년 이후 날짜는 오류여야 한다")
	}
}

func TestDecodeDateCode(t *testing.T) {
	got, err := DecodeDateCode(250101)
	if err != nil {
		t.Fatalf("해석 실패: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("%v를 기대했으나 %v", want, got)
	}
}

func TestDecodeDateCode_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), // 윤년
		time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		code, err := EncodeDateCode(d)
		if err != nil {
			t.Fatalf("인코딩 실패 %v: %v", d, err)
		}
		back, err := DecodeDateCode(code)
		if err != nil {
			t.Fatalf("해석 실패 %d: %v", code, err)
		}
		if !back.Equal(d) {
			t.Errorf("왕복 불일치: %v → %d → %v", d, code, back)
		}
	}
}

func TestDecodeDateCode_Invalid(t *testing.T) {
	invalid := []int{-1, 1000000, 251301, 250132, 250230, 230229}
	for _, code := range invalid {
		if _, err := DecodeDateCode(code); err == nil {
			t.Errorf("코드 %d는 오류여야 한다", code)
		}
	}
}
