// Package bizdays implements business-day arithmetic over whole calendar
// dates: counting the business days in an inclusive range and finding the
// date a signed number of business days away from a start date.
//
// A business day is a Monday through Friday that is not in the caller's
// HolidaySet. Weekend members of a HolidaySet have no effect.
package bizdays
