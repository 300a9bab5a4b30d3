package service

import (
	"fmt"
	"time"
)

// ── YYMMDD 정수 날짜 코드 ──
//
// 구 문서 저장소는 수강 기간을 두 자리 연도 정수(예: 240110)로 저장했다.
// 내부에서는 time.Time 만 사용하고, 이 인코딩은 레거시 가져오기
// 경계에서만 해석한다. 세기는 2000년대로 고정한다.

// dateCodeCentury 두 자리 연도의 기준 세기
const dateCodeCentury = 2000

// EncodeDateCode 날짜를 YYMMDD 정수 코드로 변환한다 (2000~2099년 범위)
func EncodeDateCode(t time.Time) (int, error) {
	year := t.Year()
	if year < dateCodeCentury || year > dateCodeCentury+99 {
		return 0, fmt.Errorf("날짜 코드 인코딩 불가: 연도 %d는 2000-2099 범위를 벗어납니다", year)
	}
	return (year-dateCodeCentury)*10000 + int(t.Month())*100 + t.Day(), nil
}

// DecodeDateCode YYMMDD 정수 코드를 날짜로 해석한다
// 달력에 없는 날짜(예: 250230)는 오류를 반환한다
func DecodeDateCode(code int) (time.Time, error) {
	if code < 0 || code > 991231 {
		return time.Time{}, fmt.Errorf("날짜 코드 해석 불가: %d", code)
	}

	yy := code / 10000
	mm := (code / 100) % 100
	dd := code % 100

	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return time.Time{}, fmt.Errorf("날짜 코드 해석 불가: %d", code)
	}

	t := time.Date(dateCodeCentury+yy, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	// time.Date 는 범위 밖 일자를 다음 달로 넘기므로 역검증한다
	if int(t.Month()) != mm || t.Day() != dd {
		return time.Time{}, fmt.Errorf("날짜 코드 해석 불가: %d (달력에 없는 날짜)", code)
	}
	return t, nil
}
