package models

func intPtr(v int64) *int64 { return &v }

// seedDishes is the launch menu replicated across every weekday.
var seedDishes = []FoodItem{
	{ID: 1, Name: "سالاد سزار با مرغ گریل", Description: "کاهو، نان تست، پنیر پارمزان، سس سزار و فیله مرغ گریل شده", Price: 180000, Image: "https://picsum.photos/id/102/400/300"},
	{ID: 2, Name: "ساندویچ استیک", Description: "گوشت استیک ورقه شده، پنیر، قارچ و پیاز کاراملی در نان چاپاتا", Price: 250000, Image: "https://picsum.photos/id/218/400/300"},
	{ID: 3, Name: "پاستا آلفردو با مرغ", Description: "پاستا پنه با سس خامه‌ای آلفردو، مرغ و قارچ", Price: 220000, Image: "https://picsum.photos/id/25/400/300", DiscountPrice: intPtr(200000)},
	{ID: 4, Name: "ماهی سالمون گریل شده", Description: "فیله ماهی سالمون تازه گریل شده به همراه سبزیجات بخارپز", Price: 350000, Image: "https://picsum.photos/id/30/400/300"},
	{ID: 5, Name: "اسموتی سبز", Description: "ترکیبی از اسفناج، موز، سیب و دانه چیا برای یک شروع پرانرژی", Price: 95000, Image: "https://picsum.photos/id/76/400/300"},
	{ID: 6, Name: "کاسه کینوا و سبزیجات", Description: "کینوا، نخود، فلفل دلمه‌ای، خیار و سس لیمویی", Price: 150000, Image: "https://picsum.photos/id/42/400/300"},
}

// SeedMenus builds the initial weekly menu with all seven weekday keys
// populated. Item ids are offset per day so they stay unique across the week.
func SeedMenus() DailyMenus {
	menus := make(DailyMenus, len(Weekdays))
	for di, day := range Weekdays {
		items := make([]FoodItem, len(seedDishes))
		for i, dish := range seedDishes {
			dish.ID = int64((di+1)*100 + i + 1)
			items[i] = dish
		}
		menus[day] = items
	}
	return menus
}

// DrinksMenu is the fixed drinks catalog offered at checkout. It is not
// persisted.
var DrinksMenu = []Drink{
	{ID: "d1", Name: "نوشابه", Price: 20000},
	{ID: "d2", Name: "آب معدنی", Price: 10000},
	{ID: "d3", Name: "نوشیدنی رژیمی", Price: 25000},
}

// PersianDayNames maps weekday keys to their customer-facing names.
var PersianDayNames = map[DayKey]string{
	Saturday:  "شنبه",
	Sunday:    "یکشنبه",
	Monday:    "دوشنبه",
	Tuesday:   "سه‌شنبه",
	Wednesday: "چهارشنبه",
	Thursday:  "پنجشنبه",
	Friday:    "جمعه",
}

const defaultPlannerPrompt = `لطفا یک برنامه غذایی و ورزشی کامل و شخصی‌سازی شده برای کاربر با مشخصات زیر تهیه کن.
برنامه باید واقع‌بینانه، عملی و متناسب با هدف کاربر باشد.
تمام متن‌ها باید به زبان فارسی روان باشد.

مشخصات کاربر:
- سن: {{age}}
- جنسیت: {{gender}}
- وزن: {{weight}} کیلوگرم
- قد: {{height}} سانتی‌متر
- سطح فعالیت: {{activityLevel}}
- هدف اصلی: {{goal}}
- محدودیت‌های غذایی: {{dietaryRestrictions}}
- عضو آسیب‌پذیر یا آسیب‌دیده: {{vulnerableBodyParts}}

قوانین:
1.  **برنامه غذایی**: وعده‌های غذایی (صبحانه، ناهار، شام) و میان‌وعده‌ها را با جزئیات، نام غذا، و کالری تقریبی مشخص کن. غذاها باید ایرانی و در دسترس باشند.
2.  **برنامه ورزشی**: یک برنامه هفتگی با تقسیم‌بندی روزها و عضلات هدف ارائه بده. برای هر حرکت، نام، تعداد ست و تکرار، و یک توضیح کوتاه بنویس.
3.  **قانون ایمنی مهم**: اگر کاربر عضو آسیب‌دیده مشخص کرده است، برنامه ورزشی باید طوری طراحی شود که هیچ فشاری به آن ناحیه وارد نکند. حرکات جایگزین یا تقویتی مناسب پیشنهاد بده.
4.  **زبان**: پاسخ باید کاملا به زبان فارسی باشد.
5.  **ساختار**: خروجی را دقیقا مطابق با ساختار JSON درخواستی تولید کن.`

const defaultPhotoLabPrompt = `Describe this image in English in a detailed but concise manner. Focus on the main person, their clothing, their pose, their facial expression, and the background. Return only the description, without any preamble or extra text.`

// DefaultAdminSettings returns the settings record used until an admin has
// saved one. API keys and Telegram credentials start unset.
func DefaultAdminSettings() AdminSettings {
	return AdminSettings{
		TelegramToken:    "",
		TelegramChatID:   "",
		PlannerAPIKey:    "",
		PlannerPrompt:    defaultPlannerPrompt,
		PhotoLabAPIKey:   "",
		PhotoLabPrompt:   defaultPhotoLabPrompt,
		ContactAddress:   "تهران، خیابان فیتنس، پلاک ۱۲۳، باشگاه فیت‌فود",
		ContactPhone:     "021-12345678",
		ContactInstagram: "fitfood_app",
		SiteURL:          "http://your-domain.com",
	}
}
